package result

import (
	"fmt"

	"github.com/ehllie/monadic"
	"github.com/ehllie/monadic/scope"
)

// Handle is the scope handle of a Bind body with error domain E. It only accepts
// Results of the same domain, which guarantees that an aborting Err fits the result
// of the scope.
type Handle[E error] struct {
	h *scope.Handle
}

// Scope returns the underlying scope handle, e.g. for checking a Maybe with
// scope.Check. Note that aborting a result scope with anything but an Err of domain
// E is a programming error.
func (h Handle[E]) Scope() *scope.Handle {
	return h.h
}

// Check returns the value of r, or aborts the scope h belongs to if r is an Err.
func Check[T any, E error](h Handle[E], r Result[T, E]) T {
	return scope.Check[T](h.h, r)
}

// Bind runs body inside a fresh scope. If body checks an Err, that error is the
// result of the scope; otherwise it is whatever body returns.
func Bind[R any, E error](body func(h Handle[E]) Result[R, E], opts ...scope.Option) Result[R, E] {
	return scope.Run(func(sh *scope.Handle) Result[R, E] {
		return body(Handle[E]{h: sh})
	}, abortErr[R, E], opts...)
}

// Bind1 turns a scope body of one argument into a plain function.
func Bind1[A, R any, E error](body func(Handle[E], A) Result[R, E], opts ...scope.Option) func(A) Result[R, E] {
	return func(a A) Result[R, E] {
		return Bind(func(h Handle[E]) Result[R, E] {
			return body(h, a)
		}, opts...)
	}
}

// Bind2 turns a scope body of two arguments into a plain function.
func Bind2[A, B, R any, E error](body func(Handle[E], A, B) Result[R, E], opts ...scope.Option) func(A, B) Result[R, E] {
	return func(a A, b B) Result[R, E] {
		return Bind(func(h Handle[E]) Result[R, E] {
			return body(h, a, b)
		}, opts...)
	}
}

// Bind3 turns a scope body of three arguments into a plain function.
func Bind3[A, B, C, R any, E error](body func(Handle[E], A, B, C) Result[R, E], opts ...scope.Option) func(A, B, C) Result[R, E] {
	return func(a A, b B, c C) Result[R, E] {
		return Bind(func(h Handle[E]) Result[R, E] {
			return body(h, a, b, c)
		}, opts...)
	}
}

type failing[E error] interface {
	Failure() (E, bool)
}

func abortErr[R any, E error](cause any) Result[R, E] {
	if f, ok := cause.(failing[E]); ok {
		if e, failed := f.Failure(); failed {
			return Err[R](e)
		}
	}
	tracer().Errorf("result scope aborted by %v", cause)
	panic(fmt.Errorf("%w: result scope aborted by %v", monadic.ErrOutsideDomain, cause))
}

var _ monadic.Container[int] = Ok[int, error](1)
var _ monadic.Container[int] = Err[int](fmt.Errorf("x"))
