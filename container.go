package monadic

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnwrapEmpty is the error behind every unwrap of an empty container which has
// not been given a fallback value.
var ErrUnwrapEmpty = errors.New("unwrap of empty container")

// ErrOutsideDomain is raised by raw-value factories if a value is neither of the
// declared success type nor of the declared error type.
var ErrOutsideDomain = errors.New("value outside of declared domain")

// Container is the capability set every container variant implements.
//
// Apply and Fold are part of the protocol as well, but their signatures depend on the
// container family; see packages maybe and result.
type Container[T any] interface {
	// Ok returns true if it's safe to unwrap.
	Ok() bool
	// Unwrap returns the value inside. If the container is empty, the first fallback
	// value is returned. Without a fallback, Unwrap panics with an *UnwrapError.
	Unwrap(fallback ...T) T
	// Get returns the value inside together with an ok-flag.
	Get() (T, bool)
}

// UnwrapError is the panic value of an unwrap without fallback. Cause is the error
// payload of a failed result, or nil for an absent value.
type UnwrapError struct {
	Container string // printable form of the container unwrapped
	Cause     error
}

func (e *UnwrapError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrUnwrapEmpty.Error(), e.Container, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnwrapEmpty.Error(), e.Container)
}

// Is makes errors.Is(err, ErrUnwrapEmpty) hold for every UnwrapError.
func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrapEmpty
}

func (e *UnwrapError) Unwrap() error {
	return e.Cause
}

// Fallback returns the first of fallback, if present. It is a helper for container
// implementations.
func Fallback[T any](fallback []T) (T, bool) {
	if len(fallback) == 0 {
		var zero T
		return zero, false
	}
	return fallback[0], true
}

// Either returns the first of fallback or panics with an *UnwrapError for c, if
// fallback is empty. It is a helper for container implementations.
func Either[T any](c fmt.Stringer, cause error, fallback []T) T {
	if d, ok := Fallback(fallback); ok {
		return d
	}
	panic(&UnwrapError{Container: c.String(), Cause: cause})
}

// IsNil reports whether v is nil or a nil value of a nil-able kind (pointer, map,
// slice, func, channel or interface). This is what lifting combinators consider a
// null-like return value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
