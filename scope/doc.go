/*
Package scope implements unwind boundaries for writing a sequence of fallible steps as
straight-line code.

A scope is entered with Run. The body receives a *Handle and calls Check on every
intermediate container. As long as containers are ok, Check hands out their values and
the body continues. The first container which is not ok aborts the body: Run catches the
abort signal and returns whatever its onAbort function makes of the offending container.

    r := scope.Run(func(h *scope.Handle) maybe.Maybe[string] {
        a := scope.Check(h, sometimes("a"))
        b := scope.Check(h, sometimes("do nothing")) // aborts, the next line is never reached
        return maybe.Just(a + b)
    }, func(any) maybe.Maybe[string] {
        return maybe.Nothing[string]()
    })

Every call of Run installs its own boundary, identified by a fresh UUID. An abort signal
is recovered only by the Run which created the handle it was raised with; it passes any
other boundary untouched. Panics which are not abort signals are never intercepted.

Clients will rarely use this package directly; maybe.Bind and result.Bind wrap it for
their container family.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'monadic.scope'.
func tracer() tracing.Trace {
	return tracing.Select("monadic.scope")
}
