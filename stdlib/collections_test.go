package stdlib

// File : rant/stdlib/collections_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestGetIndexesListWithNegativeWraparound(t *testing.T) {
	rt := newTestRuntime()
	lst := value.ListOf(value.NewList(value.Int(1), value.Int(2), value.Int(3)))

	v, err := getFn(rt, []value.Value{lst, value.Int(0)})
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int)

	v, err = getFn(rt, []value.Value{lst, value.Int(-1)})
	require.NoError(t, err)
	require.Equal(t, int64(3), v.Int)
}

func TestGetOutOfRangeIndexErrors(t *testing.T) {
	rt := newTestRuntime()
	lst := value.ListOf(value.NewList(value.Int(1), value.Int(2), value.Int(3)))
	_, err := getFn(rt, []value.Value{lst, value.Int(99)})
	require.Error(t, err)
}

func TestSetMutatesListInPlace(t *testing.T) {
	rt := newTestRuntime()
	l := value.NewList(value.Int(1), value.Int(2))
	lst := value.ListOf(l)

	_, err := setFn(rt, []value.Value{lst, value.Int(0), value.Int(9)})
	require.NoError(t, err)
	require.Equal(t, int64(9), l.Items[0].Int)
}

func TestPushAppendsAndPopRemovesLast(t *testing.T) {
	rt := newTestRuntime()
	l := value.NewList(value.Int(1))
	lst := value.ListOf(l)

	_, err := pushFn(rt, []value.Value{lst, value.Int(2), value.Int(3)})
	require.NoError(t, err)
	require.Equal(t, 3, l.Len())

	popped, err := popFn(rt, []value.Value{lst})
	require.NoError(t, err)
	require.Equal(t, int64(3), popped.Int)
	require.Equal(t, 2, l.Len())
}

func TestIndexOfFindsFirstMatchOrNegOne(t *testing.T) {
	rt := newTestRuntime()
	lst := value.ListOf(value.NewList(value.Str("a"), value.Str("b"), value.Str("a")))

	v, err := indexOfFn(rt, []value.Value{lst, value.Str("b")})
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int)

	v, err = indexOfFn(rt, []value.Value{lst, value.Str("z")})
	require.NoError(t, err)
	require.Equal(t, int64(-1), v.Int)
}

func TestSortedLeavesOriginalUntouched(t *testing.T) {
	rt := newTestRuntime()
	l := value.NewList(value.Int(3), value.Int(1), value.Int(2))
	lst := value.ListOf(l)

	sorted, err := sortedFn(rt, []value.Value{lst})
	require.NoError(t, err)
	require.Equal(t, int64(1), sorted.Lst.Items[0].Int)
	require.Equal(t, int64(3), l.Items[0].Int, "sorted must not mutate its argument")
}

func TestSortMutatesInPlace(t *testing.T) {
	rt := newTestRuntime()
	l := value.NewList(value.Int(3), value.Int(1), value.Int(2))
	lst := value.ListOf(l)

	_, err := sortFn(rt, []value.Value{lst})
	require.NoError(t, err)
	require.Equal(t, int64(1), l.Items[0].Int)
	require.Equal(t, int64(3), l.Items[2].Int)
}

func TestHasChecksListMembershipAndMapKeys(t *testing.T) {
	rt := newTestRuntime()
	lst := value.ListOf(value.NewList(value.Int(1), value.Int(2)))
	v, err := hasFn(rt, []value.Value{lst, value.Int(2)})
	require.NoError(t, err)
	require.True(t, v.Bool)

	m := value.NewMap()
	m.Set("x", value.Int(1))
	v, err = hasFn(rt, []value.Value{value.MapOf(m), value.Str("x")})
	require.NoError(t, err)
	require.True(t, v.Bool)

	v, err = hasFn(rt, []value.Value{value.MapOf(m), value.Str("y")})
	require.NoError(t, err)
	require.False(t, v.Bool)
}

func TestKeysReturnsSortedMapKeys(t *testing.T) {
	rt := newTestRuntime()
	m := value.NewMap()
	m.Set("b", value.Int(1))
	m.Set("a", value.Int(2))

	v, err := keysFn(rt, []value.Value{value.MapOf(m)})
	require.NoError(t, err)
	require.Equal(t, 2, v.Lst.Len())
	require.Equal(t, "a", v.Lst.Items[0].Str)
	require.Equal(t, "b", v.Lst.Items[1].Str)
}
