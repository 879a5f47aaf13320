// Command monadic demonstrates the maybe and result containers of this module.
//
//     monadic foo foo            # Just(foo and foo)
//     monadic foo neither        # Nothing
//     monadic format "%s writes %s" name=Gopher lang=Go --keys name,lang
//
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
