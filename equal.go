package monadic

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets payload comparison look into unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// SameValue reports whether two payloads are equal by value. Values of different
// dynamic types are never equal, i.e. SameValue(any(1), any(int64(1))) is false.
// Types with an Equal method are compared with it.
func SameValue(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}
