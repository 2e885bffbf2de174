package stdlib

// File : rant/stdlib/boolean_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestAndOrFoldAcrossVariadicTail(t *testing.T) {
	rt := newTestRuntime()
	v, err := andFn(rt, []value.Value{value.Bool(true), value.Bool(true), value.Bool(false)})
	require.NoError(t, err)
	require.False(t, v.Bool)

	v, err = orFn(rt, []value.Value{value.Bool(false), value.Bool(false), value.Bool(true)})
	require.NoError(t, err)
	require.True(t, v.Bool)
}

func TestNotXor(t *testing.T) {
	rt := newTestRuntime()
	v, err := notFn(rt, []value.Value{value.Bool(false)})
	require.NoError(t, err)
	require.True(t, v.Bool)

	v, err = xorFn(rt, []value.Value{value.Bool(true), value.Bool(true)})
	require.NoError(t, err)
	require.False(t, v.Bool)
}
