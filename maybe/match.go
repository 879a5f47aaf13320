package maybe

// --- Matching --------------------------------------------------------------

// Matcher is the result of Maybe.Match. Exactly one of its cases returns the
// matcher itself; the other returns nil, which lets clients switch over the variant.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	value   T
	present bool
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.present {
		if v != nil {
			*v = mm.value
		}
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.present {
		return mm
	}
	return nil
}
