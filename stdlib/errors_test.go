package stdlib

// File : rant/stdlib/errors_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestErrorNativeRaisesPlainErrorWithMessage(t *testing.T) {
	rt := newTestRuntime()
	_, err := errorFn(rt, []value.Value{value.Str("boom")})
	require.Error(t, err)
	require.Equal(t, "boom", err.Error())
}

func TestErrorNativeRequiresExactlyOneArgument(t *testing.T) {
	rt := newTestRuntime()
	_, err := errorFn(rt, nil)
	require.Error(t, err)
}
