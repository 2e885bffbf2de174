package stdlib

// File : rant/stdlib/verify_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestKindCheckNatives(t *testing.T) {
	rt := newTestRuntime()

	v, err := kindCheck(value.KindString)(rt, []value.Value{value.Str("x")})
	require.NoError(t, err)
	require.True(t, v.Bool)

	v, err = kindCheck(value.KindInteger)(rt, []value.Value{value.Str("x")})
	require.NoError(t, err)
	require.False(t, v.Bool)
}

func TestIsNumberAcceptsIntegerAndFloat(t *testing.T) {
	rt := newTestRuntime()
	v, err := isNumberFn(rt, []value.Value{value.Float(1.5)})
	require.NoError(t, err)
	require.True(t, v.Bool)

	v, err = isNumberFn(rt, []value.Value{value.Str("1.5")})
	require.NoError(t, err)
	require.False(t, v.Bool)
}

func TestIsComparesAgainstTypeNameString(t *testing.T) {
	rt := newTestRuntime()
	v, err := isFn(rt, []value.Value{value.Int(1), value.Str("integer")})
	require.NoError(t, err)
	require.True(t, v.Bool)
}
