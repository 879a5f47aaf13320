package result

import "github.com/ehllie/monadic/maybe"

// Apply is the bind operation of Result: if r is Ok(v), it returns f(v) as is;
// if r is Err(e), it returns Err(e) of the target type without calling f.
func Apply[T, U any, E error](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	switch x := r.(type) {
	case success[T, E]:
		return f(x.value)
	case failure[T, E]:
		return failure[U, E]{err: x.err}
	}
	panic("result: Apply on nil Result")
}

// Map transforms the value of an Ok with f.
func Map[T, U any, E error](r Result[T, E], f func(T) U) Result[U, E] {
	return Apply(r, func(v T) Result[U, E] {
		return Ok[U, E](f(v))
	})
}

// MapErr transforms the error of an Err with f, possibly into another error domain.
func MapErr[T any, E, F error](r Result[T, E], f func(E) F) Result[T, F] {
	switch x := r.(type) {
	case success[T, E]:
		return Ok[T, F](x.value)
	case failure[T, E]:
		return Err[T](f(x.err))
	}
	panic("result: MapErr on nil Result")
}

// Fold starts with r and successively applies f to the current value and the next
// item of items. It stops consuming items at the first Err, which is returned.
// With no items, Fold returns r unchanged. Like Apply, Fold panics if r or one
// of the results of f is nil.
func Fold[T any, E error, X any](r Result[T, E], f func(T, X) Result[T, E], items []X) Result[T, E] {
	acc := r
	for i, x := range items {
		if acc == nil {
			panic("result: Fold over nil Result")
		}
		v, ok := acc.Get()
		if !ok {
			tracer().Debugf("fold: short-circuit before item %d of %d", i, len(items))
			return acc
		}
		acc = f(v, x)
	}
	if acc == nil {
		panic("result: Fold over nil Result")
	}
	return acc
}

// FromMaybe converts a Maybe into a Result, using e for Nothing.
func FromMaybe[T any, E error](m maybe.Maybe[T], e E) Result[T, E] {
	if v, ok := m.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](e)
}

// ToMaybe converts a Result into a Maybe, dropping the error of an Err.
func ToMaybe[T any, E error](r Result[T, E]) maybe.Maybe[T] {
	return maybe.FromOk(r.Get())
}
