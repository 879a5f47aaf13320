package maybe_test

import (
	"strconv"
	"testing"

	"github.com/ehllie/monadic/maybe"
	"github.com/stretchr/testify/assert"
)

type user struct {
	name string
}

func TestBindsNil(t *testing.T) {
	users := map[int]*user{1: {name: "ann"}}
	find := maybe.Binds(func(id int) *user { return users[id] })

	u := find(1)
	assert.True(t, u.Ok())
	assert.Equal(t, "ann", u.Unwrap().name)
	assert.True(t, maybe.Equal(find(2), maybe.Nothing[*user]()))
}

func TestBindsLiftRoundTrip(t *testing.T) {
	sometimes := maybe.Binds(func(ask string) any {
		if ask == "do nothing" {
			return nil
		}
		return ask
	})
	assert.True(t, maybe.Equal(sometimes("do nothing"), maybe.Nothing[any]()))
	assert.True(t, maybe.Equal(sometimes("do something"), maybe.Just[any]("do something")))

	var s []int
	emptyish := maybe.Binds0(func() []int { return s })
	assert.False(t, emptyish().Ok(), "nil slice is null-like")
	assert.True(t, maybe.Binds0(func() []int { return []int{} })().Ok(), "empty slice is a value")
}

func TestBinds2(t *testing.T) {
	index := maybe.Binds2(func(m map[string]*int, k string) *int { return m[k] })
	seven := 7
	m := map[string]*int{"seven": &seven}
	assert.Equal(t, &seven, index(m, "seven").Unwrap())
	assert.False(t, index(m, "eight").Ok())
}

func TestBindsOk(t *testing.T) {
	atoi := maybe.BindsOk(func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
	assert.True(t, maybe.Equal(atoi("42"), maybe.Just(42)))
	assert.False(t, atoi("x").Ok())
}

func TestFromPtrAndOf(t *testing.T) {
	n := 5
	assert.True(t, maybe.Equal(maybe.FromPtr(&n), maybe.Just(5)))
	assert.False(t, maybe.FromPtr[int](nil).Ok())

	assert.True(t, maybe.Equal(maybe.Of[string]("a"), maybe.Just("a")))
	assert.False(t, maybe.Of[string](nil).Ok())
	assert.False(t, maybe.Of[string](42).Ok(), "wrong runtime type")
	var up *user
	assert.False(t, maybe.Of[*user](up).Ok(), "typed nil")
}

func TestJustDoesNotInspect(t *testing.T) {
	var up *user
	assert.True(t, maybe.Just(up).Ok(), "Just keeps a nil pointer as given")
	lookup := maybe.Binds(func(int) *user { return up })
	assert.False(t, lookup(1).Ok(), "the lifting path maps it to Nothing")
}
