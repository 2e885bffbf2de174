package stdlib

// File : rant/stdlib/control_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestBreakContinueReturnRaiseVMSignals(t *testing.T) {
	rt := newTestRuntime()

	_, err := breakFn(rt, nil)
	require.Error(t, err)
	require.Equal(t, "break outside of block", err.Error())

	_, err = continueFn(rt, nil)
	require.Error(t, err)
	require.Equal(t, "continue outside of block", err.Error())

	_, err = returnFn(rt, []value.Value{value.Int(7)})
	require.Error(t, err)
	require.Equal(t, "return outside of function", err.Error())
}

func TestReturnWithNoArgumentDefaultsToEmpty(t *testing.T) {
	rt := newTestRuntime()
	_, err := returnFn(rt, nil)
	require.Error(t, err)
}
