package callback_test

import (
	"errors"
	"testing"

	"github.com/funvibe/callback"
	"github.com/stretchr/testify/require"
)

func TestNewFuncRejectsNonFunctions(t *testing.T) {
	_, err := callback.NewFunc(nil)
	require.Error(t, err)

	_, err = callback.NewFunc(42)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a function")

	var typedNil func()
	_, err = callback.NewFunc(typedNil)
	require.Error(t, err)
}

func TestNewFuncRejectsArityMismatch(t *testing.T) {
	add := func(a, b int) {}

	_, err := callback.NewFunc(add, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected 2 arguments, got 1")

	_, err = callback.NewFunc(add, 1, 2, 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected 2 arguments, got 3")
}

func TestNewFuncRejectsTypeMismatch(t *testing.T) {
	_, err := callback.NewFunc(func(s string) {}, 7)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not assignable")

	// nil has no typed zero for value kinds.
	_, err = callback.NewFunc(func(n int) {}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "nil is not a valid int")
}

func TestNewFuncVariadicNeedsFixedArgs(t *testing.T) {
	join := func(sep string, parts ...string) {}

	_, err := callback.NewFunc(join)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least 1")

	_, err = callback.NewFunc(join, "-", "ok", 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not assignable")
}

func TestNewFuncBindingError(t *testing.T) {
	_, err := callback.NewFunc("nope")

	var bindErr *callback.FuncBindingError
	require.ErrorAs(t, err, &bindErr)
	require.Equal(t, "nope", bindErr.Fn)
	require.Error(t, bindErr.Reason)
}

func TestNewMethodRejectsBadBindings(t *testing.T) {
	_, err := callback.NewMethod(nil, "Increment")
	require.Error(t, err)

	counter := &Counter{}

	_, err = callback.NewMethod(counter, "Missing")
	var bindErr *callback.MethodBindingError
	require.ErrorAs(t, err, &bindErr)
	require.Equal(t, "Missing", bindErr.Name)
	require.Contains(t, err.Error(), `method "Missing" not found`)

	_, err = callback.NewMethod(counter, "Add", "five")
	require.ErrorAs(t, err, &bindErr)
	require.Contains(t, err.Error(), "not assignable")

	_, err = callback.NewMethod(counter, "Add")
	require.ErrorAs(t, err, &bindErr)
	require.Contains(t, err.Error(), "expected 1 arguments, got 0")
}

func TestNewMethodValueReceiverMethodSet(t *testing.T) {
	// Pointer receiver methods are not in the value's method set.
	_, err := callback.NewMethod(Counter{}, "Increment")
	require.Error(t, err)

	// But value receiver methods resolve through a pointer.
	out := 0
	cb, err := callback.NewMethod(&mathOps{}, "Sum", &out, 1, 2)
	require.NoError(t, err)
	cb.Invoke()
	require.Equal(t, 3, out)
}

func TestNewUnboundRejectsBadShapes(t *testing.T) {
	_, err := callback.NewUnbound(nil)
	require.Error(t, err)

	_, err = callback.NewUnbound("nope")
	require.Error(t, err)

	_, err = callback.NewUnbound(func() {})
	require.Error(t, err)
	require.Contains(t, err.Error(), "receiver as its first parameter")

	// Receiver slot is skipped when counting arguments.
	_, err = callback.NewUnbound(mathOps.Sum, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected 3 arguments, got 1")
}

func TestBindingErrorsUnwrap(t *testing.T) {
	_, err := callback.NewFunc(func(n int) {})

	var bindErr *callback.FuncBindingError
	require.ErrorAs(t, err, &bindErr)
	require.Equal(t, bindErr.Reason, errors.Unwrap(bindErr))
}
