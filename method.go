package callback

import (
	"fmt"
	"reflect"
)

// methodCallback wraps a method bound to a receiver, with captured arguments.
// The bound method value keeps the receiver reachable for the lifetime of
// the callback; recv is retained alongside it for diagnostics.
type methodCallback struct {
	recv   reflect.Value
	name   string
	method reflect.Value
	args   []reflect.Value
}

func (c *methodCallback) Invoke() {
	c.method.Call(c.args)
}

func (c *methodCallback) String() string {
	return fmt.Sprintf("bound method %s.%s", c.recv.Type(), c.name)
}

// methodCallback0 is the no-argument specialization.
type methodCallback0 struct {
	recv   reflect.Value
	name   string
	method reflect.Value
}

func (c *methodCallback0) Invoke() {
	c.method.Call(nil)
}

func (c *methodCallback0) String() string {
	return fmt.Sprintf("bound method %s.%s", c.recv.Type(), c.name)
}
