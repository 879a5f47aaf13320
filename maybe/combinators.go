package maybe

// Apply is the bind operation of Maybe: if m is Just(v), it returns f(v) as is;
// if m is Nothing, it returns Nothing of the target type without calling f.
// A nil m counts as Nothing.
func Apply[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	switch x := m.(type) {
	case just[T]:
		return f(x.value)
	case nothing[T], nil:
	}
	return Nothing[U]()
}

// Map transforms the value of a Just with f.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	return Apply(m, func(v T) Maybe[U] {
		return Just(f(v))
	})
}

// Fold starts with m and successively applies f to the current value and the next
// item of items. It stops consuming items at the first Nothing, which is returned.
// With no items, Fold returns m unchanged.
func Fold[T, X any](m Maybe[T], f func(T, X) Maybe[T], items []X) Maybe[T] {
	acc := m
	for i, x := range items {
		v, ok := get(acc)
		if !ok {
			tracer().Debugf("fold: short-circuit before item %d of %d", i, len(items))
			return Nothing[T]()
		}
		acc = f(v, x)
	}
	if acc == nil {
		return Nothing[T]()
	}
	return acc
}

// OrElse returns m if it is Just, other otherwise.
func OrElse[T any](m Maybe[T], other Maybe[T]) Maybe[T] {
	if _, ok := get(m); ok {
		return m
	}
	return other
}
