package futures

import (
	"context"
	"sync/atomic"

	"github.com/abevier/safe/results"
)

// ResolveAll waits for all of the provided Awaitables to complete and returns a results.Result for each
// one at the index corresponding to the provided slice.
// If the provided context is done first, the context's error is returned by this function.
func ResolveAll[T any](ctx context.Context, fs []Awaitable[T]) ([]results.Result[T], error) {
	res := make([]results.Result[T], len(fs))
	all := make(chan struct{})

	remaining := int64(len(fs))
	if remaining == 0 {
		close(all)
	}

	for i, f := range fs {
		i := i
		f.OnComplete(func(v T, err error) {
			res[i] = results.New(v, err)
			// the last completion releases the waiter
			if atomic.AddInt64(&remaining, -1) == 0 {
				close(all)
			}
		})
	}

	select {
	case <-all:
		return res, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
