package stdlib

// File : rant/stdlib/stdlib_test.go

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/value"
)

func TestRegisterInstallsEveryNativeUnderItsName(t *testing.T) {
	globals := map[string]value.Value{}
	Register(globals, Options{})

	for _, name := range []string{
		"break", "continue", "return",
		"rep", "sep", "sel", "if", "else-if", "else",
		"push-attrs", "pop-attrs", "count-attrs", "reset-attrs",
		"step", "step-index", "step-count",
		"and", "or", "not", "xor",
		"eq", "neq", "gt", "lt", "ge", "le",
		"add", "sub", "mul", "div", "mod", "neg", "abs", "min", "max", "clamp", "is-odd", "is-even",
		"int", "float", "string",
		"is-string", "is-integer", "is-float", "is-number", "is-bool", "is-empty", "is",
		"len", "type", "call", "either", "alt",
		"push", "pop", "index-of", "join", "sort", "sorted", "reverse", "keys", "has", "get", "set",
		"lower", "upper", "seg", "split", "lines", "indent",
		"error",
	} {
		v, ok := globals[name]
		require.True(t, ok, "expected native %q to be registered", name)
		require.True(t, v.IsFunction(), "native %q must register a function value", name)
	}

	_, hasRequire := globals["require"]
	require.False(t, hasRequire, "require must not be registered when EnableRequire is false")
}

type fakeLoader struct{}

func (fakeLoader) Require(name string) (string, error) {
	return "loaded:" + name, nil
}

func TestRegisterAddsRequireOnlyWhenEnabledWithALoader(t *testing.T) {
	globals := map[string]value.Value{}
	Register(globals, Options{EnableRequire: true, Loader: fakeLoader{}})

	fn, ok := globals["require"]
	require.True(t, ok)

	rt := newTestRuntime()
	out, err := fn.Fn.Native(rt, []value.Value{value.Str("foo")})
	require.NoError(t, err)
	require.Equal(t, "loaded:foo", out.Str)
}

func TestRegisterSkipsRequireWithoutLoaderEvenIfEnabled(t *testing.T) {
	globals := map[string]value.Value{}
	Register(globals, Options{EnableRequire: true})
	_, ok := globals["require"]
	require.False(t, ok)
}
