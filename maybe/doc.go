/*
Package maybe implements an optional container: a value which may be absent.

A Maybe[T] is either Just(v) or Nothing. Both variants are immutable and implement
monadic.Container. Clients match on the variant like this:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        fmt.Printf("got %d\n", v)
    case m.Nothing():
        fmt.Println("Aw shucks!")
    }

Functions returning a null-like value may be lifted to return a Maybe with Binds,
and chains of Maybe-returning steps may either be composed with Apply and Fold, or
be written as flat code inside a Bind scope:

    askThree := maybe.Bind3(func(h *scope.Handle, q1, q2, q3 string) maybe.Maybe[monadic.Triple[string, string, string]] {
        r1 := maybe.Check(h, sometimes(q1))
        r2 := maybe.Check(h, sometimes(q2))
        r3 := maybe.Check(h, sometimes(q3))
        return maybe.Just(monadic.T3(r1, r2, r3))
    })

The first Nothing checked in the scope makes the whole scope evaluate to Nothing.
*/
package maybe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'monadic.maybe'.
func tracer() tracing.Trace {
	return tracing.Select("monadic.maybe")
}
