package stdlib

// File : rant/stdlib/compare_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestEqCrossesIntegerAndFloat(t *testing.T) {
	rt := newTestRuntime()
	v, err := eqFn(rt, []value.Value{value.Int(2), value.Float(2.0)})
	require.NoError(t, err)
	require.True(t, v.Bool)
}

func TestEqListsCompareByIdentityNotContent(t *testing.T) {
	rt := newTestRuntime()
	a := value.ListOf(value.NewList(value.Int(1)))
	b := value.ListOf(value.NewList(value.Int(1)))
	v, err := eqFn(rt, []value.Value{a, b})
	require.NoError(t, err)
	require.False(t, v.Bool, "distinct lists with equal contents must not compare equal")

	v, err = eqFn(rt, []value.Value{a, a})
	require.NoError(t, err)
	require.True(t, v.Bool)
}

func TestNeqIsEqsNegation(t *testing.T) {
	rt := newTestRuntime()
	v, err := neqFn(rt, []value.Value{value.Str("a"), value.Str("b")})
	require.NoError(t, err)
	require.True(t, v.Bool)
}

func TestOrderingNativesConvertViaToFloat(t *testing.T) {
	rt := newTestRuntime()
	v, err := gtFn(rt, []value.Value{value.Int(5), value.Str("3")})
	require.NoError(t, err)
	require.True(t, v.Bool)

	v, err = leFn(rt, []value.Value{value.Int(3), value.Int(3)})
	require.NoError(t, err)
	require.True(t, v.Bool)
}
