package maybe

import (
	"fmt"

	"github.com/ehllie/monadic"
)

// Maybe is a value of type T which may be absent. The only implementations are the
// ones returned by Just and Nothing.
type Maybe[T any] interface {
	monadic.Container[T]
	// Match returns a matcher for switching over the variant of a Maybe.
	Match() Matcher[T]
	// WithDefault returns the value, or def if the Maybe is Nothing.
	WithDefault(def T) T
	// Map transforms a value of Just. Use the free function Map to change the type.
	Map(func(T) T) Maybe[T]
	// Apply calls f with the value of Just and returns f's result. Nothing is returned
	// unchanged. Use the free function Apply to change the type.
	Apply(f func(T) Maybe[T]) Maybe[T]
	// Fold applies f to the value and each of items in turn, stopping at the first
	// Nothing. Use the free function Fold for items of another type.
	Fold(f func(T, T) Maybe[T], items []T) Maybe[T]
	String() string
	isMaybe()
}

type just[T any] struct {
	value T
}

type nothing[T any] struct{}

// Just constructs a present Maybe. Just does not inspect x; use Of or the lifting
// functions to map null-like values to Nothing.
func Just[T any](x T) Maybe[T] {
	return just[T]{value: x}
}

// Nothing constructs an absent Maybe.
func Nothing[T any]() Maybe[T] {
	return nothing[T]{}
}

// FromOk constructs a Maybe from a comma-ok pair, as returned by map lookups.
func FromOk[T any](x T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(x)
}

// FromPtr constructs a Maybe from a pointer, treating nil as Nothing.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// Of classifies a raw value by its runtime type: if v holds a non-nil T, the result
// is Just(v), otherwise it is Nothing.
//
//     maybe.Of[string]("a")   // Just(a)
//     maybe.Of[string](nil)   // Nothing
//     maybe.Of[string](42)    // Nothing
//
func Of[T any](v any) Maybe[T] {
	if monadic.IsNil(v) {
		return Nothing[T]()
	}
	if x, ok := v.(T); ok {
		return Just(x)
	}
	tracer().Debugf("maybe.Of: %T is not a %T", v, *new(T))
	return Nothing[T]()
}

// --- Just ------------------------------------------------------------------

func (m just[T]) isMaybe() {}

func (m just[T]) Ok() bool {
	return true
}

func (m just[T]) Get() (T, bool) {
	return m.value, true
}

func (m just[T]) Unwrap(_ ...T) T {
	return m.value
}

func (m just[T]) WithDefault(_ T) T {
	return m.value
}

func (m just[T]) Map(f func(T) T) Maybe[T] {
	return Just(f(m.value))
}

func (m just[T]) Apply(f func(T) Maybe[T]) Maybe[T] {
	return f(m.value)
}

func (m just[T]) Fold(f func(T, T) Maybe[T], items []T) Maybe[T] {
	return Fold[T, T](m, f, items)
}

func (m just[T]) Match() Matcher[T] {
	return &matcher[T]{present: true, value: m.value}
}

func (m just[T]) String() string {
	return fmt.Sprintf("Just(%v)", m.value)
}

// --- Nothing ---------------------------------------------------------------

func (m nothing[T]) isMaybe() {}

func (m nothing[T]) Ok() bool {
	return false
}

func (m nothing[T]) Get() (T, bool) {
	var zero T
	return zero, false
}

func (m nothing[T]) Unwrap(fallback ...T) T {
	return monadic.Either(m, nil, fallback)
}

func (m nothing[T]) WithDefault(def T) T {
	return def
}

func (m nothing[T]) Map(_ func(T) T) Maybe[T] {
	return m
}

func (m nothing[T]) Apply(_ func(T) Maybe[T]) Maybe[T] {
	return m
}

func (m nothing[T]) Fold(_ func(T, T) Maybe[T], _ []T) Maybe[T] {
	return m
}

func (m nothing[T]) Match() Matcher[T] {
	return &matcher[T]{}
}

func (m nothing[T]) String() string {
	return "Nothing"
}

// --- Equality --------------------------------------------------------------

// Equal reports whether a and b are the same variant holding equal values. Values
// must be equal by value and of the same runtime type. Two Nothings are always equal.
func Equal[T any](a, b Maybe[T]) bool {
	av, aok := get(a)
	bv, bok := get(b)
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return monadic.SameValue(av, bv)
}

// get treats a nil Maybe as Nothing.
func get[T any](m Maybe[T]) (T, bool) {
	if m == nil {
		var zero T
		return zero, false
	}
	return m.Get()
}
