package stdlib

// File : rant/stdlib/convert_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestConvertNativesAreTotal(t *testing.T) {
	rt := newTestRuntime()

	v, err := toIntFn(rt, []value.Value{value.Str("42")})
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Int)

	v, err = toIntFn(rt, []value.Value{value.Str("not a number")})
	require.NoError(t, err)
	require.Equal(t, int64(0), v.Int)

	v, err = toFloatFn(rt, []value.Value{value.Int(3)})
	require.NoError(t, err)
	require.Equal(t, 3.0, v.Flt)

	v, err = toStringFn(rt, []value.Value{value.Int(7)})
	require.NoError(t, err)
	require.Equal(t, "7", v.Str)
}
