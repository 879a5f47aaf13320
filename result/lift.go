package result

import (
	"errors"
	"runtime"

	"github.com/ehllie/monadic"
)

// Binds converts a function with a (value, error) result into a function returning
// a Result. Every non-nil error becomes the failure.
func Binds[A, T any](f func(A) (T, error)) func(A) Result[T, error] {
	return func(a A) Result[T, error] {
		return FromTuple(f(a))
	}
}

// Capture converts f into a function returning a Result of the declared error
// domain K. An error returned by f, or a panic raised during its execution, is turned
// into Err(k) if it is (or wraps) a K:
//
//     lookup := result.Capture[*KeyError](func(key string) (string, error) {
//         v, ok := table[key]
//         if !ok {
//             return "", &KeyError{Key: key}
//         }
//         return v, nil
//     })
//
// Errors outside of K are undeclared failures: Capture re-raises them unchanged as a
// panic, instead of silently converting them. Programming errors, i.e. runtime
// errors and unwraps of empty containers, are never captured, not even for K = error.
func Capture[K error, A, T any](f func(A) (T, error)) func(A) Result[T, K] {
	return func(a A) Result[T, K] {
		return capture[K](func() (T, error) { return f(a) })
	}
}

// Capture0 is Capture for functions without arguments.
func Capture0[K error, T any](f func() (T, error)) func() Result[T, K] {
	return func() Result[T, K] {
		return capture[K](f)
	}
}

// Capture2 is Capture for functions of two arguments.
func Capture2[K error, A, B, T any](f func(A, B) (T, error)) func(A, B) Result[T, K] {
	return func(a A, b B) Result[T, K] {
		return capture[K](func() (T, error) { return f(a, b) })
	}
}

// CapturePanics is Capture for functions which signal failure by panicking only.
func CapturePanics[K error, A, T any](f func(A) T) func(A) Result[T, K] {
	return func(a A) Result[T, K] {
		return capture[K](func() (T, error) { return f(a), nil })
	}
}

func capture[K error, T any](f func() (T, error)) (r Result[T, K]) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if k, ok := declared[K](p); ok {
			tracer().Debugf("capture: converted panic %v", p)
			r = Err[T](k)
			return
		}
		panic(p)
	}()
	v, err := f()
	if err == nil {
		return Ok[T, K](v)
	}
	if k, ok := declared[K](err); ok {
		return Err[T](k)
	}
	tracer().Errorf("capture: undeclared failure %v", err)
	panic(err)
}

// declared checks if p is an error of domain K.
func declared[K error](p any) (K, bool) {
	var k K
	err, ok := p.(error)
	if !ok {
		return k, false
	}
	var rterr runtime.Error
	if errors.As(err, &rterr) || errors.Is(err, monadic.ErrUnwrapEmpty) {
		return k, false
	}
	if errors.As(err, &k) {
		return k, true
	}
	return k, false
}
