package maybe

import "github.com/ehllie/monadic"

// Binds converts a function returning a possibly null-like value into a function
// returning a Maybe. Nil pointers, maps, slices, funcs, channels and interfaces
// result in Nothing.
//
//     find := maybe.Binds(func(id int) *User { return users[id] })
//     u := find(7)   // Nothing, if users[7] is nil
//
func Binds[A, T any](f func(A) T) func(A) Maybe[T] {
	return func(a A) Maybe[T] {
		return lift(f(a))
	}
}

// Binds0 is Binds for functions without arguments.
func Binds0[T any](f func() T) func() Maybe[T] {
	return func() Maybe[T] {
		return lift(f())
	}
}

// Binds2 is Binds for functions of two arguments.
func Binds2[A, B, T any](f func(A, B) T) func(A, B) Maybe[T] {
	return func(a A, b B) Maybe[T] {
		return lift(f(a, b))
	}
}

// BindsOk converts a function with a comma-ok result into a function returning a Maybe.
func BindsOk[A, T any](f func(A) (T, bool)) func(A) Maybe[T] {
	return func(a A) Maybe[T] {
		return FromOk(f(a))
	}
}

func lift[T any](v T) Maybe[T] {
	if monadic.IsNil(v) {
		return Nothing[T]()
	}
	return Just(v)
}
