// Package futures provides an implementation of a Future which represents an asynchronous computation.
// A Future can be created and then passed around and read by multiple consumers.  This is the key difference
// between a Future and using a channel for an asynchronous computation as a channel value can only be read once.
package futures

import (
	"context"
	"errors"
	"sync"

	"github.com/abevier/safe/internal/recovery"
)

var (
	// ErrNilFailure is the error a future fails with when Fail is called with a nil error
	ErrNilFailure = errors.New("future failed with a nil error")
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Awaitable is anything that eventually completes exactly once with a value or an error and
// can notify a continuation when it does.  *Future implements it.
type Awaitable[T any] interface {
	OnComplete(cb func(T, error))
}

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using one of the FromFunc, Resolved or Rejected convenience functions.
// Once a future has been created it can be completed exactly once.  The first completion value
// wins and all other completions are silently ignored.
//
// Complete is used in the success case
// Fail is used for signaling that the Future failed with an error
//
// Get is used to extract the value and an error from the Future.  If the future has not been
// completed calling Get will block until the future completes or until the context is canceled.
// Get can be called by multiple go routines simultaneously and they will all receive the same value.
//
// OnComplete registers a continuation that is invoked with the same value and error once the future completes.
type Future[T any] struct {
	m           sync.Mutex
	isCompleted bool
	completed   chan struct{}
	callbacks   []func(T, error)

	value T
	err   error
}

// New creates a new uncompleted Future that will eventually contain a value of type T which can be anything.
// This future must be manually completed by calling Complete or Fail
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// Resolved creates a Future that is already completed with the provided value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Rejected creates a Future that has already failed with the provided error.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// FromFunc creates a new uncompleted Future that will eventually contain the return value of the provided function.
// The provided function is run asynchronously when this function is invoked.  If the function returns an error
// or panics the future fails.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		t, err := recovery.Call[T](do)
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Complete completes this Future with the provided value.  If the future has already been completed this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Fail completes this Future with the provided error.  If the future has already been completed this call is ignored.
func (f *Future[T]) Fail(err error) {
	if err == nil {
		err = ErrNilFailure
	}
	f.internalComplete(*new(T), err)
}

func (f *Future[T]) internalComplete(val T, err error) {
	f.m.Lock()
	if f.isCompleted {
		f.m.Unlock()
		return
	}

	f.isCompleted = true
	f.value = val
	f.err = err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.completed)
	f.m.Unlock()

	for _, cb := range callbacks {
		cb(val, err)
	}
}

// OnComplete registers cb to be called once with the value and error of this Future.  If the future is
// already completed cb is called immediately on the calling go routine, otherwise it is called on the
// go routine that completes the future.
func (f *Future[T]) OnComplete(cb func(T, error)) {
	f.m.Lock()
	if !f.isCompleted {
		f.callbacks = append(f.callbacks, cb)
		f.m.Unlock()
		return
	}
	f.m.Unlock()

	cb(f.value, f.err)
}

// Done returns a channel that is closed when this Future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

// Get retrieves the value of this Future.  If the future is not yet completed this call will block until the future is
// completed or until the provided context is done, in which case the context's error is returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
