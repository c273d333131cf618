package results

import "github.com/hashicorp/go-multierror"

// Result holds either the value of a successful operation or the error it failed with, never both.
type Result[T any] struct {
	val T
	err error
}

// New builds a Result from a (value, error) return pair.  A non-nil error wins and the value is dropped.
func New[T any](val T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{val: val}
}

func Success[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Failure panics if err is nil, a failed Result always carries its error.
func Failure[T any](err error) Result[T] {
	if err == nil {
		panic("results: Failure requires a non-nil error")
	}
	return Result[T]{err: err}
}

// Get returns the pair.  Exactly one of the two is meaningful: the error when it is non-nil, the value otherwise.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

func (r Result[T]) Value() T {
	return r.val
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Partition splits rs into the values of the successful results, in order, and a single error
// aggregating every failure.  The error is nil when nothing failed.
func Partition[T any](rs []Result[T]) ([]T, error) {
	vals := make([]T, 0, len(rs))
	var errs *multierror.Error

	for _, r := range rs {
		if r.err != nil {
			errs = multierror.Append(errs, r.err)
			continue
		}
		vals = append(vals, r.val)
	}

	return vals, errs.ErrorOrNil()
}
