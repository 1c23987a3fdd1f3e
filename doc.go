// Package callback provides a uniform, type-erased deferred call: a callable
// plus a fixed snapshot of arguments, captured now and invoked later through
// one common interface.
//
// A Callback is built once and may be stored or queued by code that knows
// nothing about the original signature. Three named constructors cover the
// three call shapes:
//
//   - NewFunc captures a free function and its arguments.
//   - NewMethod captures a method bound to a receiver, resolved by name.
//   - NewUnbound captures a method expression and invokes it on a zero-value
//     receiver (nil for pointer receivers).
//
// Arguments are captured by value at construction. Mutating the caller's
// variables afterwards does not change what the callback invokes with;
// slices, maps and pointers share their referents exactly as an ordinary Go
// call would. Return values of the callable are discarded. A callback may be
// invoked any number of times and replays the same snapshot each time.
//
// Shape mismatches (wrong argument count or type, unknown method) are
// rejected when the callback is constructed, never at Invoke. The generic
// constructors Func0 through Func3 move that check to compile time for
// fixed-arity functions; method expressions compose with them directly, e.g.
// Func1((*Counter).Increment, c).
//
// The package schedules nothing and handles no errors on behalf of the
// callable: a panic raised during invocation propagates unchanged to the
// caller of Invoke. Invoke performs no internal synchronization; a handle is
// immutable and may be passed between goroutines, but concurrent invocation
// of the same handle is only as safe as the wrapped callable itself.
//
// A bound-method callback holds a strong reference to its receiver, so the
// receiver stays reachable for at least as long as the handle does.
package callback
