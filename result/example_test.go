package result_test

import (
	"fmt"
	"strings"

	"github.com/ehllie/monadic/result"
)

// formatWith fills format with the values of keys in d. A missing key is a failure
// of the declared domain *KeyError.
func formatWith(format string, d map[string]string, keys []string) result.Result[string, *KeyError] {
	get := result.Capture[*KeyError](lookup(d))
	return result.Bind(func(h result.Handle[*KeyError]) result.Result[string, *KeyError] {
		vals := make([]any, 0, len(keys))
		for _, k := range keys {
			vals = append(vals, result.Check(h, get(k)))
		}
		return result.Ok[string, *KeyError](fmt.Sprintf(format, vals...))
	})
}

func ExampleCapture() {
	d := map[string]string{"name": "Gopher", "lang": "Go"}
	fmt.Println(formatWith("%s writes %s", d, []string{"name", "lang"}))
	fmt.Println(formatWith("%s writes %s", d, []string{"name", "editor"}))
	// Output:
	// Ok(Gopher writes Go)
	// Err(key error: "editor")
}

func ExampleFold() {
	words := []string{"apply", "fold", "unwrap"}
	total := result.Fold(result.Ok[int, error](0), func(n int, w string) result.Result[int, error] {
		if strings.TrimSpace(w) == "" {
			return result.Err[int](fmt.Errorf("blank word"))
		}
		return result.Ok[int, error](n + len(w))
	}, words)
	fmt.Println(total.Unwrap())
	// Output:
	// 15
}
