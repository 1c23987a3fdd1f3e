package callback

import "fmt"

// FuncBindingError reports a failed function binding, either of a free
// function (NewFunc) or of a method expression (NewUnbound).
type FuncBindingError struct {
	Fn     any
	Reason error
}

func (e *FuncBindingError) Error() string {
	if e.Fn == nil {
		return fmt.Sprintf("invalid function binding: %v", e.Reason)
	}
	return fmt.Sprintf("invalid function binding: %T: %v", e.Fn, e.Reason)
}

func (e *FuncBindingError) Unwrap() error { return e.Reason }

// MethodBindingError reports a failed binding of a named method to a
// receiver (NewMethod).
type MethodBindingError struct {
	Recv   any
	Name   string
	Reason error
}

func (e *MethodBindingError) Error() string {
	if e.Recv == nil {
		return fmt.Sprintf("invalid method binding: %s: %v", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid method binding: %T.%s: %v", e.Recv, e.Name, e.Reason)
}

func (e *MethodBindingError) Unwrap() error { return e.Reason }
