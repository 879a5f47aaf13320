package result

import (
	"errors"
	"fmt"

	"github.com/ehllie/monadic"
)

// ErrNilFailure replaces a nil error given to Err, if the error domain permits.
var ErrNilFailure = errors.New("failure without error")

// Result is the outcome of a computation which either succeeded with a value of
// type T or failed with an error of domain E. The only implementations are the ones
// returned by Ok and Err.
type Result[T any, E error] interface {
	monadic.Container[T]
	// Failure returns the error of an Err, together with an ok-flag.
	Failure() (E, bool)
	// Match returns a matcher for switching over the variant of a Result.
	Match() Matcher[T, E]
	// WithDefault returns the value, or def if the Result is an Err.
	WithDefault(def T) T
	// Map transforms the value of an Ok. Use the free function Map to change the type.
	Map(func(T) T) Result[T, E]
	// Apply calls f with the value of an Ok and returns f's result. An Err is returned
	// unchanged. Use the free function Apply to change the type.
	Apply(f func(T) Result[T, E]) Result[T, E]
	// Fold applies f to the value and each of items in turn, stopping at the first Err.
	Fold(f func(T, T) Result[T, E], items []T) Result[T, E]
	String() string
	isResult()
}

type success[T any, E error] struct {
	value T
}

type failure[T any, E error] struct {
	err E
}

// Ok constructs a successful Result.
func Ok[T any, E error](x T) Result[T, E] {
	return success[T, E]{value: x}
}

// Err constructs a failed Result. A nil error is replaced by ErrNilFailure if E
// is able to hold it.
func Err[T any, E error](e E) Result[T, E] {
	if monadic.IsNil(e) {
		if x, ok := any(ErrNilFailure).(E); ok {
			e = x
		}
	}
	return failure[T, E]{err: e}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
func FromTuple[T any](x T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](x)
}

// Of classifies a raw value by its runtime type: a T results in Ok, an E results in
// Err. The success type is tested first. Values of any other type are a programming
// error and cause a panic wrapping monadic.ErrOutsideDomain.
func Of[T any, E error](v any) Result[T, E] {
	if x, ok := v.(T); ok {
		return Ok[T, E](x)
	}
	if e, ok := v.(E); ok {
		return Err[T](e)
	}
	panic(fmt.Errorf("%w: %T is neither %T nor %T", monadic.ErrOutsideDomain, v, *new(T), *new(E)))
}

// --- Ok --------------------------------------------------------------------

func (r success[T, E]) isResult() {}

func (r success[T, E]) Ok() bool {
	return true
}

func (r success[T, E]) Get() (T, bool) {
	return r.value, true
}

func (r success[T, E]) Failure() (E, bool) {
	var zero E
	return zero, false
}

func (r success[T, E]) Unwrap(_ ...T) T {
	return r.value
}

func (r success[T, E]) WithDefault(_ T) T {
	return r.value
}

func (r success[T, E]) Map(f func(T) T) Result[T, E] {
	return Ok[T, E](f(r.value))
}

func (r success[T, E]) Apply(f func(T) Result[T, E]) Result[T, E] {
	return f(r.value)
}

func (r success[T, E]) Fold(f func(T, T) Result[T, E], items []T) Result[T, E] {
	return Fold[T, E, T](r, f, items)
}

func (r success[T, E]) Match() Matcher[T, E] {
	return &matcher[T, E]{ok: true, value: r.value}
}

func (r success[T, E]) String() string {
	return fmt.Sprintf("Ok(%v)", r.value)
}

// --- Err -------------------------------------------------------------------

func (r failure[T, E]) isResult() {}

func (r failure[T, E]) Ok() bool {
	return false
}

func (r failure[T, E]) Get() (T, bool) {
	var zero T
	return zero, false
}

func (r failure[T, E]) Failure() (E, bool) {
	return r.err, true
}

func (r failure[T, E]) Unwrap(fallback ...T) T {
	return monadic.Either(r, r.err, fallback)
}

func (r failure[T, E]) WithDefault(def T) T {
	return def
}

func (r failure[T, E]) Map(_ func(T) T) Result[T, E] {
	return r
}

func (r failure[T, E]) Apply(_ func(T) Result[T, E]) Result[T, E] {
	return r
}

func (r failure[T, E]) Fold(_ func(T, T) Result[T, E], _ []T) Result[T, E] {
	return r
}

func (r failure[T, E]) Match() Matcher[T, E] {
	return &matcher[T, E]{err: r.err}
}

func (r failure[T, E]) String() string {
	return fmt.Sprintf("Err(%v)", r.err)
}

// --- Equality --------------------------------------------------------------

// Equal reports whether a and b are the same variant holding equal payloads. Payloads
// must be equal by value and of the same runtime type.
func Equal[T any, E error](a, b Result[T, E]) bool {
	if a.Ok() != b.Ok() {
		return false
	}
	if a.Ok() {
		av, _ := a.Get()
		bv, _ := b.Get()
		return monadic.SameValue(av, bv)
	}
	ae, _ := a.Failure()
	be, _ := b.Failure()
	return monadic.SameValue(ae, be)
}
