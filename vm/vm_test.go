package vm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/parser"
	"github.com/textgen/rant/resolver"
	"github.com/textgen/rant/scope"
	"github.com/textgen/rant/value"
)

// fixedRNG drives a VM's RandUint64 deterministically for tests that
// need a predictable selector/separator outcome.
func fixedRNG(n uint64) func() uint64 {
	return func() uint64 { return n }
}

func newTestVM() *VM {
	return New(map[string]value.Value{}, fixedRNG(0), "test", false)
}

func parseOK(t *testing.T, src string) *parser.Sequence {
	t.Helper()
	p := parser.New(src, "test", false)
	seq := p.Parse()
	require.False(t, p.Diagnostics().HasErrors(), "unexpected diagnostics: %v", p.Diagnostics().Problems)
	return seq
}

func TestRunPlainFragment(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, "Hello, world!"))
	require.NoError(t, err)
	require.Equal(t, "Hello, world!", out)
}

// TestRunVarDefAlwaysPrints traces the worked example from the
// whitespace/print-flag model: variable definitions have no Flag field
// and always print their assigned value, unlike VarGet which honours
// Sink.
func TestRunVarDefAlwaysPrints(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, "<$x = 2> <$y = 3> <x>+<y>"))
	require.NoError(t, err)
	require.Equal(t, "2 3 2+3", out)
}

func TestRunVarGetFallback(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, "<missing?fallback text>"))
	require.NoError(t, err)
	require.Equal(t, "fallback text", out)
}

func TestRunSinkMarkDoesNotSilenceVarDef(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, "a!<$x = 5>b"))
	require.NoError(t, err)
	// VarDef always prints regardless of the sink mark on a neighbouring
	// token; sink only ever applies to VarGet/Closure/calls/blocks which
	// carry a Flag field.
	require.Equal(t, "a5b", out)
}

func TestRunFuncDefNeverPrintsButCallDoes(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, "[$double:n]{<n>+<n>}[double:5]"))
	require.NoError(t, err)
	require.Equal(t, "5+5", out)
}

func TestRunClosurePrintsFunctionValue(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, "[?x]{<x>}"))
	require.NoError(t, err)
	require.Equal(t, "<function>", out)
}

func TestRunComposeChainSubstitutesProducerValue(t *testing.T) {
	vm := newTestVM()
	vm.Globals["echo"] = value.Func(&value.Function{
		Name: "echo",
		Native: func(rt value.Runtime, args []value.Value) (value.Value, error) {
			return args[0], nil
		},
	})
	out, err := vm.Run(parseOK(t, "[echo:1&][echo:&]"))
	require.NoError(t, err)
	require.Equal(t, "1", out)
}

func TestEvalBlockRepsAndSeparator(t *testing.T) {
	vm := newTestVM()
	vm.Res.Attrs().Reps = resolver.RepsN(3)
	vm.Res.Attrs().Separator = value.Str(",")

	block := &parser.BlockNode{
		Elements: []*parser.Sequence{
			{Nodes: []parser.Node{&parser.TextFragmentNode{Text: "x"}}},
		},
	}
	out := NewOutputWriter()
	require.NoError(t, vm.evalBlock(block, out))
	require.Equal(t, "x,x,x", out.String())
}

func TestEvalBlockBreakStopsIteration(t *testing.T) {
	vm := newTestVM()
	vm.Res.Attrs().Reps = resolver.RepsN(3)
	vm.Globals["brk"] = value.Func(&value.Function{
		Name:   "brk",
		Native: func(rt value.Runtime, args []value.Value) (value.Value, error) { return value.Empty, Break() },
	})

	block := &parser.BlockNode{
		Elements: []*parser.Sequence{
			{Nodes: []parser.Node{&parser.NamedCallNode{Name: "brk"}}},
		},
	}
	out := NewOutputWriter()
	require.NoError(t, vm.evalBlock(block, out))
	require.Equal(t, "", out.String())
}

func TestCallNativeFunctionGetsVariadicTailUncondensed(t *testing.T) {
	vm := newTestVM()
	var captured []value.Value
	fn := &value.Function{
		Name:          "collect",
		MinArgCount:   1,
		VariadicStart: 1,
		Native: func(rt value.Runtime, args []value.Value) (value.Value, error) {
			captured = args
			return value.Empty, nil
		},
	}
	_, err := vm.Invoke(value.Func(fn), []value.Value{value.Int(1), value.Int(2), value.Int(3)})
	require.NoError(t, err)
	require.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3)}, captured)
}

// TestCallFunctionArityTooFewArgs exercises checkArity directly, so the
// function under test must NOT be Native: callFunction's native branch
// returns before arity is ever checked (natives declare no Params and
// are trusted to validate their own argument count).
func TestCallFunctionArityTooFewArgs(t *testing.T) {
	vm := newTestVM()
	fn := &value.Function{
		Name:        "needsTwo",
		MinArgCount: 2,
		Params: []value.Param{
			{Name: "a"}, {Name: "b"},
		},
		VariadicStart: 2,
		Body:          &seqBody{seq: &parser.Sequence{}},
	}
	_, err := vm.Invoke(value.Func(fn), []value.Value{value.Int(1)})
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	require.Equal(t, ArgumentMismatch, rerr.Kind)
}

func TestCallUserFunctionBindsParamsAndCaptures(t *testing.T) {
	vm := newTestVM()
	require.NoError(t, vm.Calls.Push(&scope.Frame{Flavor: scope.Original}))
	defer vm.Calls.Pop()
	vm.Calls.Locals.DefVarValue(vm, "greeting", scope.Local, 0, value.Str("hi"))

	body := &parser.Sequence{Nodes: []parser.Node{
		&parser.VarGetNode{Path: &parser.AccessPath{Components: []parser.PathComponent{{Kind: parser.CompName, Name: "greeting"}}}},
		&parser.TextFragmentNode{Text: " "},
		&parser.VarGetNode{Path: &parser.AccessPath{Components: []parser.PathComponent{{Kind: parser.CompName, Name: "name"}}}},
	}}
	fn := &value.Function{
		Name:          "greet",
		MinArgCount:   1,
		VariadicStart: 1,
		Params:        []value.Param{{Name: "name"}},
		Body:          &seqBody{seq: body},
		Captured:      map[string]value.Value{"greeting": value.Str("hi")},
	}
	result, err := vm.Invoke(value.Func(fn), []value.Value{value.Str("world")})
	require.NoError(t, err)
	require.Equal(t, "hi world", result.ToString())
}

func TestBreakEscapingFunctionIsRuntimeError(t *testing.T) {
	vm := newTestVM()
	body := &parser.Sequence{Nodes: []parser.Node{&parser.NamedCallNode{Name: "brk"}}}
	vm.Globals["brk"] = value.Func(&value.Function{
		Name:   "brk",
		Native: func(rt value.Runtime, args []value.Value) (value.Value, error) { return value.Empty, Break() },
	})
	fn := &value.Function{Name: "f", VariadicStart: 0, Body: &seqBody{seq: body}}
	_, err := vm.Invoke(value.Func(fn), nil)
	require.Error(t, err)
}

// TestRunListAccessPath covers spec's worked example #6 verbatim:
// `(1;2;3)` bound to `list`, then `<list/0>` -> 1, `<list/-1>` -> 3
// (negative wraparound), `<list/99>` -> a runtime IndexError.
func TestRunListAccessPath(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, "<$list=(1;2;3)><list/0> <list/-1>"))
	require.NoError(t, err)
	require.Equal(t, "(1; 2; 3)1 3", out)
}

func TestRunListAccessPathOutOfRangeIndexIsRuntimeError(t *testing.T) {
	vm := newTestVM()
	_, err := vm.Run(parseOK(t, "<$list=(1;2;3)><list/99>"))
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	require.Equal(t, IndexError, rerr.Kind)
}

// TestRunMapAccessPath covers spec's worked example #7 verbatim:
// `@(k=1; {k2}=2)` (a static key and a dynamic key) bound to `m`, then
// `<m/k2>` -> 2.
func TestRunMapAccessPath(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, `<$m=@(k=1; {k2}=2)><m/k2>`))
	require.NoError(t, err)
	require.Contains(t, out, "2")
}

func TestRunListAccessPathSetMutatesInPlace(t *testing.T) {
	vm := newTestVM()
	out, err := vm.Run(parseOK(t, "<$list=(1;2;3)><list/0=9><list/0>"))
	require.NoError(t, err)
	require.Equal(t, "(1; 2; 3)99", out)
}
