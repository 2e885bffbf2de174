package stdlib

// File : rant/stdlib/general_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestLenPerKind(t *testing.T) {
	rt := newTestRuntime()

	v, err := lenFn(rt, []value.Value{value.Str("hello")})
	require.NoError(t, err)
	require.Equal(t, int64(5), v.Int)

	v, err = lenFn(rt, []value.Value{value.ListOf(value.NewList(value.Int(1), value.Int(2)))})
	require.NoError(t, err)
	require.Equal(t, int64(2), v.Int)

	v, err = lenFn(rt, []value.Value{value.Empty})
	require.NoError(t, err)
	require.Equal(t, int64(0), v.Int)
}

func TestTypeReportsKindName(t *testing.T) {
	rt := newTestRuntime()
	v, err := typeFn(rt, []value.Value{value.Int(1)})
	require.NoError(t, err)
	require.Equal(t, "integer", v.Str)
}

func TestCallInvokesNativeFunctionValue(t *testing.T) {
	rt := newTestRuntime()
	doubled := &value.Function{
		Name: "double",
		Native: func(rt value.Runtime, args []value.Value) (value.Value, error) {
			return value.Int(args[0].ToInt() * 2), nil
		},
	}
	v, err := callFn(rt, []value.Value{value.Func(doubled), value.Int(21)})
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Int)
}

func TestCallRejectsNonFunctionFirstArgument(t *testing.T) {
	rt := newTestRuntime()
	_, err := callFn(rt, []value.Value{value.Int(1)})
	require.Error(t, err)
}

func TestEitherPicksOneOfTwoDeterministically(t *testing.T) {
	rt := newTestRuntime() // RNG stream fixed at 0
	v, err := eitherFn(rt, []value.Value{value.Str("a"), value.Str("b")})
	require.NoError(t, err)
	require.Equal(t, "a", v.Str)
}

func TestAltPicksAmongCandidates(t *testing.T) {
	rt := newTestRuntime()
	v, err := altFn(rt, []value.Value{value.Str("x"), value.Str("y"), value.Str("z")})
	require.NoError(t, err)
	require.Equal(t, "x", v.Str)
}
