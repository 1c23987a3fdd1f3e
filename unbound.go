package callback

import (
	"fmt"
	"reflect"
)

// unboundCallback wraps a method expression invoked on a zero-value
// receiver. The receiver is synthesized once at construction and occupies
// the first slot of args; for pointer receivers it is nil, so only methods
// that never dereference the receiver are safe to capture this way.
type unboundCallback struct {
	fn   reflect.Value
	args []reflect.Value
}

func (c *unboundCallback) Invoke() {
	c.fn.Call(c.args)
}

func (c *unboundCallback) String() string {
	return fmt.Sprintf("<unbound %s %d args>", c.fn.Type(), len(c.args)-1)
}

// unboundCallback0 is the no-argument specialization.
type unboundCallback0 struct {
	fn   reflect.Value
	recv reflect.Value
}

func (c *unboundCallback0) Invoke() {
	c.fn.Call([]reflect.Value{c.recv})
}

func (c *unboundCallback0) String() string {
	return fmt.Sprintf("<unbound %s>", c.fn.Type())
}
