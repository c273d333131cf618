// Package recovery runs a function inside a region that turns a panic into an error.
package recovery

import (
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/panics"
)

// PanicError is returned by Run when the function panicked with a value that is not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("value", fmt.Sprint(e.Value)),
		slog.String("stack", string(e.Stack)),
	)
}

// Run calls fn once and reports how it ended.  A normal return yields nil.  A panic with an error
// value yields that error unchanged, any other panic value yields a *PanicError.
func Run(fn func()) error {
	var c panics.Catcher
	c.Try(fn)

	r := c.Recovered()
	if r == nil {
		return nil
	}

	if err, ok := r.Value.(error); ok {
		return err
	}

	return &PanicError{Value: r.Value, Stack: r.Stack}
}

// Call runs fn inside Run and folds a panic and a returned error into the same error result.
func Call[T any](fn func() (T, error)) (T, error) {
	var (
		val T
		err error
	)

	if perr := Run(func() { val, err = fn() }); perr != nil {
		return *new(T), perr
	}

	if err != nil {
		return *new(T), err
	}

	return val, nil
}
