package callback

import "reflect"

// The FuncN constructors cover the common fixed arities with the shape
// check moved to compile time: a wrong argument count or type does not
// build. They produce the same wrapper variants as NewFunc. Method
// expressions fit naturally, with the receiver as the first argument:
//
//	Func1((*Counter).Increment, c)   // bound: receiver captured
//	Func2(Point.Translate, p, delta) // receiverless shapes work the same way

// Func0 captures a function of no arguments.
func Func0(fn func()) Callback {
	if fn == nil {
		panic("callback: nil function")
	}
	return &funcCallback0{fn: reflect.ValueOf(fn)}
}

// Func1 captures fn with one argument.
func Func1[A any](fn func(A), a A) Callback {
	if fn == nil {
		panic("callback: nil function")
	}
	return &funcCallback{fn: reflect.ValueOf(fn), args: []reflect.Value{
		valueOf(&a),
	}}
}

// Func2 captures fn with two arguments.
func Func2[A, B any](fn func(A, B), a A, b B) Callback {
	if fn == nil {
		panic("callback: nil function")
	}
	return &funcCallback{fn: reflect.ValueOf(fn), args: []reflect.Value{
		valueOf(&a), valueOf(&b),
	}}
}

// Func3 captures fn with three arguments.
func Func3[A, B, C any](fn func(A, B, C), a A, b B, c C) Callback {
	if fn == nil {
		panic("callback: nil function")
	}
	return &funcCallback{fn: reflect.ValueOf(fn), args: []reflect.Value{
		valueOf(&a), valueOf(&b), valueOf(&c),
	}}
}

// valueOf captures an argument at its static type, so a nil interface or
// nil pointer argument still yields a valid, typed reflect.Value.
func valueOf[T any](p *T) reflect.Value {
	return reflect.ValueOf(p).Elem()
}
