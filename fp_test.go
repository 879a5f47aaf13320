package monadic_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ehllie/monadic"
	"github.com/stretchr/testify/assert"
)

func TestPlainHelpers(t *testing.T) {
	show := monadic.Compose(
		func(n int) float32 { return float32(n) / 4 },
		func(x float32) string { return fmt.Sprintf("%.2f", x) },
	)
	assert.Equal(t, "1.75", show(7))
	assert.Equal(t, "hello", monadic.Const("hello")())
	assert.Zero(t, monadic.Unit(7))
	assert.Equal(t, "", monadic.Unit("x"))
	assert.Nil(t, monadic.Unit([]int{1}))
}

type box struct {
	n int
}

func (b box) String() string { return fmt.Sprintf("box(%d)", b.n) }

func TestSameValue(t *testing.T) {
	assert.True(t, monadic.SameValue(1, 1))
	assert.False(t, monadic.SameValue(1, 2))
	assert.False(t, monadic.SameValue(any(1), any(int64(1))), "different runtime types")
	assert.True(t, monadic.SameValue(box{3}, box{3}), "unexported fields are compared")
	assert.False(t, monadic.SameValue(box{3}, box{4}))
	assert.True(t, monadic.SameValue([]string{"a"}, []string{"a"}))
}

func TestUnwrapErrorIs(t *testing.T) {
	cause := errors.New("key missing")
	err := &monadic.UnwrapError{Container: "Err(key missing)", Cause: cause}
	assert.ErrorIs(t, err, monadic.ErrUnwrapEmpty)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "key missing")

	bare := &monadic.UnwrapError{Container: "Nothing"}
	assert.ErrorIs(t, bare, monadic.ErrUnwrapEmpty)
	assert.Equal(t, "unwrap of empty container: Nothing", bare.Error())
}

func TestEither(t *testing.T) {
	assert.Equal(t, 5, monadic.Either(box{0}, nil, []int{5, 6}))
	assert.PanicsWithError(t, "unwrap of empty container: box(0)", func() {
		monadic.Either[int](box{0}, nil, nil)
	})
}

func TestTuples(t *testing.T) {
	p := monadic.P("a", 1)
	a, n := p.Decompose()
	assert.Equal(t, "a", a)
	assert.Equal(t, 1, n)
	assert.Equal(t, "(a, 1)", p.String())

	tr := monadic.T3("a", "b", "c")
	assert.Equal(t, "(a, b, c)", tr.String())
	x, y, z := tr.Decompose()
	assert.Equal(t, []string{"a", "b", "c"}, []string{x, y, z})
}

func TestKleisli(t *testing.T) {
	apply := func(m []int, f func(int) []int) []int { // list monad bind
		var out []int
		for _, x := range m {
			out = append(out, f(x)...)
		}
		return out
	}
	dup := func(n int) []int { return []int{n, n} }
	inc := func(n int) []int { return []int{n + 1} }
	h := monadic.Kleisli(dup, inc, apply)
	assert.Equal(t, []int{4, 4}, h(3))
}
