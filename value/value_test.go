package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotalConversions(t *testing.T) {
	require.Equal(t, int64(5), Str("5").ToInt())
	require.Equal(t, int64(0), Str("not a number").ToInt())
	require.Equal(t, 2.5, Str("2.5").ToFloat())
	require.Equal(t, int64(1), Bool(true).ToInt())
	require.Equal(t, int64(0), Empty.ToInt())
}

func TestTruthy(t *testing.T) {
	require.True(t, Int(1).Truthy())
	require.False(t, Int(0).Truthy())
	require.False(t, Str("").Truthy())
	require.True(t, Str("x").Truthy())
	require.False(t, Empty.Truthy())
	require.True(t, Func(&Function{}).Truthy())
}

func TestListIndexNegative(t *testing.T) {
	l := NewList(Int(1), Int(2), Int(3))
	v, ok := l.Index(-1)
	require.True(t, ok)
	require.Equal(t, int64(3), v.Int)

	_, ok = l.Index(5)
	require.False(t, ok)
}

func TestMapPrototypeChain(t *testing.T) {
	base := NewMap()
	base.Set("greeting", Str("hello"))
	derived := &Map{Entries: map[string]Value{}, Prototype: base}
	derived.Set("name", Str("world"))

	v, ok := derived.Get("greeting")
	require.True(t, ok)
	require.Equal(t, "hello", v.Str)

	v, ok = derived.Get("name")
	require.True(t, ok)
	require.Equal(t, "world", v.Str)

	_, ok = derived.Get("missing")
	require.False(t, ok)
}

func TestMapPrototypeCycleIsBounded(t *testing.T) {
	a := NewMap()
	b := NewMap()
	a.Prototype = b
	b.Prototype = a
	_, ok := a.Get("nope")
	require.False(t, ok) // must terminate, not loop forever
}

func TestListValueToString(t *testing.T) {
	l := NewList(Int(1), Str("a"))
	require.Equal(t, "(1; a)", ListOf(l).ToString())
}
