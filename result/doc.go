/*
Package result implements a container for the outcome of a computation that may fail.

A Result[T, E] is either Ok(v) or Err(e). E is the error domain the client declares
for a given use: a specific error type like *KeyError, or just error. Results are
immutable and implement monadic.Container.

    var v int
    var e error
    switch m := r.Match(); m {
    case m.Ok(&v):
        fmt.Printf("got %d\n", v)
    case m.Err(&e):
        fmt.Printf("failed: %v\n", e)
    }

Capture lifts an ordinary Go function into one returning a Result. Failures of the
declared domain, returned or raised by panic, become Err values; anything else is
not the business of the Result and keeps propagating as a panic:

    lookup := result.Capture[*KeyError](func(k string) (string, error) { ... })

Steps returning Results may be written as flat code inside a Bind scope; the first
Err aborts the scope and becomes its result.
*/
package result

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'monadic.result'.
func tracer() tracing.Trace {
	return tracing.Select("monadic.result")
}
