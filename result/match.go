package result

// --- Matching --------------------------------------------------------------

// Matcher is the result of Result.Match. Exactly one of its cases returns the
// matcher itself; the other returns nil.
type Matcher[T any, E error] interface {
	Ok(*T) Matcher[T, E]
	Err(*E) Matcher[T, E]
}

type matcher[T any, E error] struct {
	value T
	err   E
	ok    bool
}

func (rm *matcher[T, E]) Ok(v *T) Matcher[T, E] {
	if rm.ok {
		if v != nil {
			*v = rm.value
		}
		return rm
	}
	return nil
}

func (rm *matcher[T, E]) Err(err *E) Matcher[T, E] {
	if !rm.ok {
		if err != nil {
			*err = rm.err
		}
		return rm
	}
	return nil
}
