package main

import (
	"fmt"
	"strings"

	"github.com/ehllie/monadic/maybe"
	"github.com/ehllie/monadic/result"
	"github.com/ehllie/monadic/scope"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var traceKeys = []string{"monadic.maybe", "monadic.result", "monadic.scope"}

func newRootCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:          "monadic",
		Short:        "demonstrate optional and result containers",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := tracing.LevelError
			if trace {
				level = tracing.LevelDebug
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&trace, "trace", false, "trace scopes and combinators")
	cmd.AddCommand(newFooCmd(), newFormatCmd())
	return cmd
}

// --- foo -------------------------------------------------------------------

func fooOrBar(s string) maybe.Maybe[string] {
	if s == "foo" || s == "bar" {
		return maybe.Just(s)
	}
	return maybe.Nothing[string]()
}

func newFooCmd() *cobra.Command {
	var showTrail bool
	cmd := &cobra.Command{
		Use:   "foo <word>...",
		Short: "check words for being foo or bar inside a scope",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			trail := &scope.Trail{}
			both := maybe.Bind1(func(h *scope.Handle, s string) maybe.Maybe[string] {
				f := maybe.Check(h, fooOrBar(s))
				return maybe.Just(f + " and " + s)
			}, scope.Named("foo"), scope.WithTrail(trail))
			for _, arg := range args {
				var v string
				switch m := both(arg).Match(); m {
				case m.Just(&v):
					fmt.Fprintf(w, "%s!\n", v)
				case m.Nothing():
					fmt.Fprintf(w, "%s: Aw shucks!\n", arg)
				}
			}
			if showTrail {
				fmt.Fprint(w, trail.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTrail, "trail", false, "print the steps of every scope")
	return cmd
}

// --- format ----------------------------------------------------------------

// KeyError is the failure of a lookup of a missing key.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("no value for key %q", e.Key)
}

func parseDict(pairs []string) (map[string]string, error) {
	d := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", p)
		}
		d[k] = v
	}
	return d, nil
}

func formatWith(format string, d map[string]string, keys []string) result.Result[string, *KeyError] {
	get := result.Capture[*KeyError](func(k string) (string, error) {
		v, ok := d[k]
		if !ok {
			return "", &KeyError{Key: k}
		}
		return v, nil
	})
	return result.Bind(func(h result.Handle[*KeyError]) result.Result[string, *KeyError] {
		vals := make([]any, 0, len(keys))
		for _, k := range keys {
			vals = append(vals, result.Check(h, get(k)))
		}
		return result.Ok[string, *KeyError](fmt.Sprintf(format, vals...))
	}, scope.Named("format"))
}

func newFormatCmd() *cobra.Command {
	var keys []string
	cmd := &cobra.Command{
		Use:   "format <format> [key=value]...",
		Short: "fill a format with values looked up by key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDict(args[1:])
			if err != nil {
				return err
			}
			var s string
			var kerr *KeyError
			switch m := formatWith(args[0], d, keys).Match(); m {
			case m.Ok(&s):
				fmt.Fprintln(cmd.OutOrStdout(), s)
			case m.Err(&kerr):
				return kerr
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&keys, "keys", "k", nil, "keys to look up, in order")
	return cmd
}
