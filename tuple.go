package monadic

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple, mostly used as the payload of a scope collecting two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// P constructs a Pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// --- Triple ----------------------------------------------------------------

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// T3 constructs a Triple.
func T3[A, B, C any](x A, y B, z C) Triple[A, B, C] {
	return Triple[A, B, C]{x, y, z}
}

// Decompose returns the components of t.
func (t Triple[A, B, C]) Decompose() (A, B, C) {
	return t.First, t.Second, t.Third
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
