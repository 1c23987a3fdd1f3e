package callback

import (
	"errors"
	"fmt"
	"reflect"
)

// NewFunc captures a free function together with args and returns a handle
// that will call fn(args...) on each Invoke. The shape of args is validated
// against fn's signature here; Invoke cannot fail on a mismatch.
func NewFunc(fn any, args ...any) (Callback, error) {
	v, err := funcValue(fn)
	if err != nil {
		return nil, &FuncBindingError{Fn: fn, Reason: err}
	}
	captured, err := captureArgs(v.Type(), 0, args)
	if err != nil {
		return nil, &FuncBindingError{Fn: fn, Reason: err}
	}
	if len(captured) == 0 {
		return &funcCallback0{fn: v}, nil
	}
	return &funcCallback{fn: v, args: captured}, nil
}

// NewMethod captures the method named name bound to recv, together with
// args. The method is resolved on recv's method set, so a pointer receiver
// method requires recv to be a pointer. The receiver used at Invoke is
// exactly the one supplied here, regardless of what the caller's variable
// refers to later.
func NewMethod(recv any, name string, args ...any) (Callback, error) {
	if recv == nil {
		return nil, &MethodBindingError{Name: name, Reason: errors.New("receiver is nil")}
	}
	rv := reflect.ValueOf(recv)
	method := rv.MethodByName(name)
	if !method.IsValid() {
		return nil, &MethodBindingError{Recv: recv, Name: name,
			Reason: fmt.Errorf("method %q not found on %s", name, rv.Type())}
	}
	captured, err := captureArgs(method.Type(), 0, args)
	if err != nil {
		return nil, &MethodBindingError{Recv: recv, Name: name, Reason: err}
	}
	if len(captured) == 0 {
		return &methodCallback0{recv: rv, name: name, method: method}, nil
	}
	return &methodCallback{recv: rv, name: name, method: method, args: captured}, nil
}

// NewUnbound captures a method expression — a func whose first parameter is
// the receiver, such as (*T).Reset or T.String — together with args, and
// invokes it on a zero value of the receiver type. For a pointer receiver
// the zero value is nil; capturing a method that dereferences its receiver
// is the caller's mistake and panics at Invoke, like the direct call would.
func NewUnbound(method any, args ...any) (Callback, error) {
	v, err := funcValue(method)
	if err != nil {
		return nil, &FuncBindingError{Fn: method, Reason: err}
	}
	t := v.Type()
	if t.NumIn() == 0 {
		return nil, &FuncBindingError{Fn: method,
			Reason: errors.New("method expression must take the receiver as its first parameter")}
	}
	captured, err := captureArgs(t, 1, args)
	if err != nil {
		return nil, &FuncBindingError{Fn: method, Reason: err}
	}
	recv := reflect.Zero(t.In(0))
	if len(captured) == 0 {
		return &unboundCallback0{fn: v, recv: recv}, nil
	}
	call := make([]reflect.Value, 0, len(captured)+1)
	call = append(call, recv)
	call = append(call, captured...)
	return &unboundCallback{fn: v, args: call}, nil
}

func funcValue(fn any) (reflect.Value, error) {
	if fn == nil {
		return reflect.Value{}, errors.New("fn is nil")
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("%s is not a function", v.Type())
	}
	if v.IsNil() {
		return reflect.Value{}, errors.New("fn is nil")
	}
	return v, nil
}

// captureArgs snapshots args against the parameter list of t, skipping the
// first offset parameters (the receiver slot for method expressions).
func captureArgs(t reflect.Type, offset int, args []any) ([]reflect.Value, error) {
	numIn := t.NumIn() - offset
	if t.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("expected at least %d arguments, got %d", numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("expected %d arguments, got %d", numIn, len(args))
	}
	if len(args) == 0 {
		return nil, nil
	}

	captured := make([]reflect.Value, len(args))
	for i, arg := range args {
		var target reflect.Type
		if t.IsVariadic() && i >= numIn-1 {
			target = t.In(t.NumIn() - 1).Elem()
		} else {
			target = t.In(i + offset)
		}

		if arg == nil {
			// reflect.ValueOf(nil) is invalid; capture the typed zero
			// value when the parameter can hold nil at all.
			switch target.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface,
				reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
				captured[i] = reflect.Zero(target)
				continue
			default:
				return nil, fmt.Errorf("argument %d: nil is not a valid %s", i, target)
			}
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(target) {
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", i, v.Type(), target)
		}
		captured[i] = v
	}
	return captured, nil
}
