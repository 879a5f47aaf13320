package maybe

import (
	"github.com/ehllie/monadic"
	"github.com/ehllie/monadic/scope"
)

// Check returns the value of m, or aborts the scope h belongs to if m is Nothing.
func Check[T any](h *scope.Handle, m Maybe[T]) T {
	return scope.Check[T](h, m)
}

// Bind runs body inside a fresh scope. If body checks a container which is not ok,
// the result is Nothing; otherwise it is whatever body returns.
func Bind[R any](body func(h *scope.Handle) Maybe[R], opts ...scope.Option) Maybe[R] {
	return scope.Run(body, abortNothing[R], opts...)
}

// Bind1 turns a scope body of one argument into a plain function.
func Bind1[A, R any](body func(*scope.Handle, A) Maybe[R], opts ...scope.Option) func(A) Maybe[R] {
	return func(a A) Maybe[R] {
		return Bind(func(h *scope.Handle) Maybe[R] {
			return body(h, a)
		}, opts...)
	}
}

// Bind2 turns a scope body of two arguments into a plain function.
func Bind2[A, B, R any](body func(*scope.Handle, A, B) Maybe[R], opts ...scope.Option) func(A, B) Maybe[R] {
	return func(a A, b B) Maybe[R] {
		return Bind(func(h *scope.Handle) Maybe[R] {
			return body(h, a, b)
		}, opts...)
	}
}

// Bind3 turns a scope body of three arguments into a plain function.
func Bind3[A, B, C, R any](body func(*scope.Handle, A, B, C) Maybe[R], opts ...scope.Option) func(A, B, C) Maybe[R] {
	return func(a A, b B, c C) Maybe[R] {
		return Bind(func(h *scope.Handle) Maybe[R] {
			return body(h, a, b, c)
		}, opts...)
	}
}

// Any container may abort a Maybe scope; all of them end up as Nothing.
func abortNothing[R any](cause any) Maybe[R] {
	tracer().Debugf("scope aborted by %v", cause)
	return Nothing[R]()
}

var _ monadic.Container[int] = Just(1)
var _ monadic.Container[int] = Nothing[int]()
