package capture

import (
	"context"
	"fmt"

	"github.com/abevier/safe/futures"
	"github.com/abevier/safe/internal/recovery"
	"github.com/abevier/safe/results"
)

// Outcome is what Do produces: a Result available right away, or a future that will complete with one.
type Outcome[T any] struct {
	result  results.Result[T]
	pending *futures.Future[results.Result[T]]
}

func (o Outcome[T]) IsPending() bool {
	return o.pending != nil
}

// Result returns the synchronous Result.  ok is false when the outcome is pending.
func (o Outcome[T]) Result() (r results.Result[T], ok bool) {
	if o.pending != nil {
		return results.Result[T]{}, false
	}
	return o.result, true
}

// Future returns the pending Result, or an already completed future for a synchronous outcome.
func (o Outcome[T]) Future() *futures.Future[results.Result[T]] {
	if o.pending != nil {
		return o.pending
	}
	return futures.Resolved(o.result)
}

// Wait returns the Result, blocking until a pending outcome completes or ctx is done.
func (o Outcome[T]) Wait(ctx context.Context) (results.Result[T], error) {
	if o.pending == nil {
		return o.result, nil
	}
	return o.pending.Get(ctx)
}

// Do captures operand, choosing how by its kind at run time:
//
//	futures.Awaitable[T]          captured like Await, always pending
//	func() *futures.Future[T]     captured like TryAsync, pending unless fn panics or returns nil
//	func() (T, error)             captured like TryE
//	func() T                      captured like Try, pending if the value is itself a futures.Awaitable[T]
//
// Any other operand is a programming error and Do panics.
func Do[T any](operand any) Outcome[T] {
	switch op := operand.(type) {
	case futures.Awaitable[T]:
		return Outcome[T]{pending: Await[T](op)}

	case func() *futures.Future[T]:
		p, err := start(op)
		if err != nil {
			return Outcome[T]{result: results.Failure[T](err)}
		}
		return Outcome[T]{pending: Await[T](p)}

	case func() (T, error):
		return Outcome[T]{result: TryE(op)}

	case func() T:
		var v T
		if err := recovery.Run(func() { v = op() }); err != nil {
			return Outcome[T]{result: results.Failure[T](err)}
		}
		if p, ok := any(v).(futures.Awaitable[T]); ok {
			if isNil(p) {
				return Outcome[T]{result: results.Failure[T](ErrNilFuture)}
			}
			return Outcome[T]{pending: Await[T](p)}
		}
		return Outcome[T]{result: results.Success(v)}

	default:
		panic(fmt.Sprintf("capture: unsupported operand of type %T", operand))
	}
}
