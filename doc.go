/*
Package monadic holds the pieces shared by the container families of this module:
the container protocol, the unwrap error and a few tuple and composition helpers.

The concrete families live in sub-packages:

    maybe: values which may be absent (Just / Nothing)
    result: values which may have failed with an error of a declared domain (Ok / Err)
    scope: the unwind boundary used to write flat "unwrap or abort" code

Both families implement Container. Type-changing combinators cannot be methods in Go,
so every family offers methods for the homogeneous case and free functions (Apply, Fold,
Map) for the general one.

A typical flow looks like this:

    lookup := maybe.BindsOk(func(k string) (int, bool) { v, ok := table[k]; return v, ok })
    sum := maybe.Fold(maybe.Just(0), func(acc int, k string) maybe.Maybe[int] {
        return maybe.Apply(lookup(k), func(v int) maybe.Maybe[int] { return maybe.Just(acc + v) })
    }, []string{"a", "b"})

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package monadic
