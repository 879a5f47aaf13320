package maybe_test

import (
	"fmt"

	"github.com/ehllie/monadic/maybe"
	"github.com/ehllie/monadic/scope"
)

func fooOrBar(s string) maybe.Maybe[string] {
	if s == "foo" || s == "bar" {
		return maybe.Just(s)
	}
	return maybe.Nothing[string]()
}

func ExampleBind1() {
	both := maybe.Bind1(func(h *scope.Handle, s string) maybe.Maybe[string] {
		f := maybe.Check(h, fooOrBar(s))
		return maybe.Just(f + " and " + s)
	})
	fmt.Println(both("foo"))
	fmt.Println(both("neither"))
	// Output:
	// Just(foo and foo)
	// Nothing
}

func ExampleMaybe_Match() {
	var v string
	switch m := fooOrBar("foo").Match(); m {
	case m.Just(&v):
		fmt.Printf("%s!\n", v)
	case m.Nothing():
		fmt.Println("Aw shucks!")
	}
	// Output:
	// foo!
}
