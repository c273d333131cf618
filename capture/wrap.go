package capture

import (
	"github.com/abevier/safe/futures"
	"github.com/abevier/safe/results"
)

// Wrap returns a function with the same arguments as fn that captures each call the way TryE does.
func Wrap[A, T any](fn func(A) (T, error)) func(A) results.Result[T] {
	return func(a A) results.Result[T] {
		return TryE(func() (T, error) { return fn(a) })
	}
}

func Wrap2[A, B, T any](fn func(A, B) (T, error)) func(A, B) results.Result[T] {
	return func(a A, b B) results.Result[T] {
		return TryE(func() (T, error) { return fn(a, b) })
	}
}

func Wrap3[A, B, C, T any](fn func(A, B, C) (T, error)) func(A, B, C) results.Result[T] {
	return func(a A, b B, c C) results.Result[T] {
		return TryE(func() (T, error) { return fn(a, b, c) })
	}
}

func WrapVariadic[A, T any](fn func(...A) (T, error)) func(...A) results.Result[T] {
	return func(args ...A) results.Result[T] {
		return TryE(func() (T, error) { return fn(args...) })
	}
}

// WrapFunc returns a function with the same arguments as fn that captures each call the way Try does.
// Use it for functions that report failure only by panicking.
func WrapFunc[A, T any](fn func(A) T) func(A) results.Result[T] {
	return func(a A) results.Result[T] {
		return Try(func() T { return fn(a) })
	}
}

func WrapFunc2[A, B, T any](fn func(A, B) T) func(A, B) results.Result[T] {
	return func(a A, b B) results.Result[T] {
		return Try(func() T { return fn(a, b) })
	}
}

func WrapFunc3[A, B, C, T any](fn func(A, B, C) T) func(A, B, C) results.Result[T] {
	return func(a A, b B, c C) results.Result[T] {
		return Try(func() T { return fn(a, b, c) })
	}
}

// WrapAsync returns a function with the same arguments as fn that captures each call the way TryAsync does.
func WrapAsync[A, T any](fn func(A) *futures.Future[T]) func(A) *futures.Future[results.Result[T]] {
	return func(a A) *futures.Future[results.Result[T]] {
		return TryAsync(func() *futures.Future[T] { return fn(a) })
	}
}

func WrapAsync2[A, B, T any](fn func(A, B) *futures.Future[T]) func(A, B) *futures.Future[results.Result[T]] {
	return func(a A, b B) *futures.Future[results.Result[T]] {
		return TryAsync(func() *futures.Future[T] { return fn(a, b) })
	}
}

func WrapAsync3[A, B, C, T any](fn func(A, B, C) *futures.Future[T]) func(A, B, C) *futures.Future[results.Result[T]] {
	return func(a A, b B, c C) *futures.Future[results.Result[T]] {
		return TryAsync(func() *futures.Future[T] { return fn(a, b, c) })
	}
}
