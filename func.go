package callback

import (
	"fmt"
	"reflect"
)

// funcCallback wraps a free function with captured arguments.
type funcCallback struct {
	fn   reflect.Value
	args []reflect.Value
}

func (c *funcCallback) Invoke() {
	c.fn.Call(c.args)
}

func (c *funcCallback) String() string {
	return fmt.Sprintf("<func %s %d args>", c.fn.Type(), len(c.args))
}

// funcCallback0 is the no-argument specialization.
type funcCallback0 struct {
	fn reflect.Value
}

func (c *funcCallback0) Invoke() {
	c.fn.Call(nil)
}

func (c *funcCallback0) String() string {
	return fmt.Sprintf("<func %s>", c.fn.Type())
}
