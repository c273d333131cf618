// Package capture runs operations that may fail by panicking, by returning an error, or by failing
// asynchronously, and reports the outcome as a results.Result instead of letting the failure escape.
//
// Operations that produce their value immediately are captured synchronously and yield a results.Result.
// Operations that produce a pending value yield a *futures.Future of results.Result which always completes
// successfully, its Result carrying either the value or the failure.
package capture

import (
	"errors"

	"github.com/abevier/safe/futures"
	"github.com/abevier/safe/internal/recovery"
	"github.com/abevier/safe/results"
)

var (
	// ErrNilFuture is the failure reported when an operation expected to produce a pending value returns nil.
	ErrNilFuture = errors.New("operation returned a nil future")
)

// Try calls fn once and captures its value, or the panic raised while calling it.
func Try[T any](fn func() T) results.Result[T] {
	var v T
	if err := recovery.Run(func() { v = fn() }); err != nil {
		return results.Failure[T](err)
	}
	return results.Success(v)
}

// TryE calls fn once and captures its value, the error it returns or the panic raised while calling it.
func TryE[T any](fn func() (T, error)) results.Result[T] {
	v, err := recovery.Call(fn)
	return results.New(v, err)
}

// TryAsync calls fn once and captures the outcome of the future it returns.  A panic raised by fn before
// it produces the future is captured immediately and the returned future is already complete.
func TryAsync[T any](fn func() *futures.Future[T]) *futures.Future[results.Result[T]] {
	p, err := start(fn)
	if err != nil {
		return futures.Resolved(results.Failure[T](err))
	}
	return Await[T](p)
}

// start calls fn and returns the future it produced, or the failure that prevented it from producing one.
func start[T any](fn func() *futures.Future[T]) (*futures.Future[T], error) {
	var p *futures.Future[T]
	if err := recovery.Run(func() { p = fn() }); err != nil {
		return nil, err
	}

	if p == nil {
		return nil, ErrNilFuture
	}

	return p, nil
}

// Await captures the outcome of p.  The returned future completes once p does, even if p is already
// complete, and never fails.  A nil p is captured as ErrNilFuture.
func Await[T any](p futures.Awaitable[T]) *futures.Future[results.Result[T]] {
	if isNil(p) {
		return futures.Resolved(results.Failure[T](ErrNilFuture))
	}

	f := futures.New[results.Result[T]]()
	p.OnComplete(func(v T, err error) {
		f.Complete(results.New(v, err))
	})
	return f
}

func isNil[T any](p futures.Awaitable[T]) bool {
	if p == nil {
		return true
	}
	f, ok := p.(*futures.Future[T])
	return ok && f == nil
}
