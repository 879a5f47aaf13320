package monadic

// Unit maps anything to the zero value of its type.
func Unit[T any](T) T {
	var zero T
	return zero
}

// Const returns a thunk which always yields a.
func Const[T any](a T) func() T {
	return func() T { return a }
}

// Compose chains two plain functions: Compose(g, f)(a) is f(g(a)).
func Compose[A, B, C any](g func(A) B, f func(B) C) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// Kleisli composes two container-returning functions, g followed by f, using the
// bind-operation of their container family:
//
//     half := func(n int) maybe.Maybe[int] { ... }
//     quarter := monadic.Kleisli(half, half, maybe.Apply[int, int])
//
// Kleisli(g, f, apply)(a) equals apply(g(a), f), which makes it a convenient way to
// state the associativity law.
func Kleisli[A, B, MB, MC any](g func(A) MB, f func(B) MC, apply func(MB, func(B) MC) MC) func(A) MC {
	return Compose(g, func(mb MB) MC { return apply(mb, f) })
}
