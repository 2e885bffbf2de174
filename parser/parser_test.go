package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *Sequence {
	t.Helper()
	p := New(src, "test", false)
	seq := p.Parse()
	return seq
}

func parseOK(t *testing.T, src string) *Sequence {
	t.Helper()
	p := New(src, "test", false)
	seq := p.Parse()
	require.False(t, p.Diagnostics().HasErrors(), "unexpected diagnostics: %v", p.Diagnostics().Problems)
	return seq
}

func TestFragmentSequence(t *testing.T) {
	seq := parseOK(t, "Hello, world!")
	require.Len(t, seq.Nodes, 4)
	frag, ok := seq.Nodes[0].(*TextFragmentNode)
	require.True(t, ok)
	require.Equal(t, "Hello,", frag.Text)
	last, ok := seq.Nodes[3].(*TextFragmentNode)
	require.True(t, ok)
	require.Equal(t, "!", last.Text)
}

func TestBlockPlain(t *testing.T) {
	seq := parseOK(t, "{a|b|c}")
	require.Len(t, seq.Nodes, 1)
	block, ok := seq.Nodes[0].(*BlockNode)
	require.True(t, ok)
	require.Len(t, block.Elements, 3)
	require.Equal(t, PrintNone, block.Flag)
}

func TestBlockHint(t *testing.T) {
	seq := parseOK(t, ">{a|b}")
	require.Len(t, seq.Nodes, 1)
	block := seq.Nodes[0].(*BlockNode)
	require.Equal(t, PrintHint, block.Flag)
}

func TestBlockSink(t *testing.T) {
	seq := parseOK(t, "!{a|b}")
	block := seq.Nodes[0].(*BlockNode)
	require.Equal(t, PrintSink, block.Flag)
}

func TestVarDefPlain(t *testing.T) {
	seq := parseOK(t, "<$x>")
	require.Len(t, seq.Nodes, 1)
	def, ok := seq.Nodes[0].(*VarDefNode)
	require.True(t, ok)
	require.Equal(t, "x", def.Name)
	require.Nil(t, def.Init)
}

func TestVarDefWithInit(t *testing.T) {
	seq := parseOK(t, "<$x=hello>")
	def := seq.Nodes[0].(*VarDefNode)
	require.Equal(t, "x", def.Name)
	require.NotNil(t, def.Init)
	require.Len(t, def.Init.Nodes, 1)
}

func TestVarGetPlain(t *testing.T) {
	seq := parseOK(t, "<x>")
	get, ok := seq.Nodes[0].(*VarGetNode)
	require.True(t, ok)
	name, ok := get.Path.RootName()
	require.True(t, ok)
	require.Equal(t, "x", name)
}

func TestVarSet(t *testing.T) {
	seq := parseOK(t, "<x=5>")
	set, ok := seq.Nodes[0].(*VarSetNode)
	require.True(t, ok)
	name, _ := set.Path.RootName()
	require.Equal(t, "x", name)
}

func TestVarGetFallback(t *testing.T) {
	seq := parseOK(t, "<x?fallback>")
	get := seq.Nodes[0].(*VarGetNode)
	require.NotNil(t, get.Fallback)
}

func TestAccessorChain(t *testing.T) {
	seq := parseOK(t, "<a;b;c>")
	require.Len(t, seq.Nodes, 3)
	for _, n := range seq.Nodes {
		_, ok := n.(*VarGetNode)
		require.True(t, ok)
	}
}

func TestAccessPathDescopeAndGlobal(t *testing.T) {
	seq := parseOK(t, "<^^x>")
	get := seq.Nodes[0].(*VarGetNode)
	require.Equal(t, Descope, get.Path.Kind)
	require.Equal(t, 2, get.Path.DescopeLevels)

	seq2 := parseOK(t, "</x>")
	get2 := seq2.Nodes[0].(*VarGetNode)
	require.Equal(t, ExplicitGlobal, get2.Path.Kind)
}

func TestAccessPathChainsComponentsWithSlash(t *testing.T) {
	seq := parseOK(t, "<list/0>")
	get := seq.Nodes[0].(*VarGetNode)
	require.Len(t, get.Path.Components, 2)
	require.Equal(t, CompName, get.Path.Components[0].Kind)
	require.Equal(t, "list", get.Path.Components[0].Name)
	require.Equal(t, CompIndex, get.Path.Components[1].Kind)
	require.Equal(t, int64(0), get.Path.Components[1].Index)
}

func TestAccessPathChainsThroughDynamicKey(t *testing.T) {
	seq := parseOK(t, "<m/{key}>")
	get := seq.Nodes[0].(*VarGetNode)
	require.Len(t, get.Path.Components, 2)
	require.Equal(t, CompDynamicKey, get.Path.Components[1].Kind)
}

func TestAccessPathChainWithExplicitGlobalPrefix(t *testing.T) {
	seq := parseOK(t, "</list/0>")
	get := seq.Nodes[0].(*VarGetNode)
	require.Equal(t, ExplicitGlobal, get.Path.Kind)
	require.Len(t, get.Path.Components, 2)
	require.Equal(t, CompIndex, get.Path.Components[1].Kind)
}

func TestNamedCallNoArgs(t *testing.T) {
	seq := parseOK(t, "[foo]")
	call, ok := seq.Nodes[0].(*NamedCallNode)
	require.True(t, ok)
	require.Equal(t, "foo", call.Name)
	require.Nil(t, call.Args)
}

func TestNamedCallWithArgs(t *testing.T) {
	seq := parseOK(t, "[foo:a;b]")
	call := seq.Nodes[0].(*NamedCallNode)
	require.Equal(t, "foo", call.Name)
	require.Len(t, call.Args, 2)
}

func TestFuncDefAndCaptured(t *testing.T) {
	seq := parseOK(t, "<$x=1>[$greet:name]{Hello <name>, <x>}")
	require.Len(t, seq.Nodes, 2)
	def, ok := seq.Nodes[1].(*FuncDefNode)
	require.True(t, ok)
	name, _ := def.Path.RootName()
	require.Equal(t, "greet", name)
	require.Len(t, def.Params, 1)
	require.Equal(t, "name", def.Params[0].Name)
	require.Contains(t, def.Captured, "x")
	require.NotContains(t, def.Captured, "name")
}

func TestClosureValue(t *testing.T) {
	seq := parseOK(t, "[?:n]{<n>}")
	closure, ok := seq.Nodes[0].(*ClosureNode)
	require.True(t, ok)
	require.Len(t, closure.Params, 1)
}

func TestParamVarity(t *testing.T) {
	seq := parseOK(t, "[$f:req;opt?;rest*]{body}")
	def := seq.Nodes[0].(*FuncDefNode)
	require.Equal(t, Required, def.Params[0].Varity)
	require.Equal(t, Optional, def.Params[1].Varity)
	require.Equal(t, VariadicStar, def.Params[2].Varity)
}

func TestAnonCall(t *testing.T) {
	seq := parseOK(t, "[!<f>:a]")
	call, ok := seq.Nodes[0].(*AnonCallNode)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
}

func TestListInit(t *testing.T) {
	seq := parseOK(t, "(1;2;3)")
	list, ok := seq.Nodes[0].(*ListInitNode)
	require.True(t, ok)
	require.Len(t, list.Elements, 3)
}

func TestEmptyListInit(t *testing.T) {
	seq := parseOK(t, "()")
	list := seq.Nodes[0].(*ListInitNode)
	require.Empty(t, list.Elements)
}

func TestMapInit(t *testing.T) {
	seq := parseOK(t, "@(a=1;b=2)")
	m, ok := seq.Nodes[0].(*MapInitNode)
	require.True(t, ok)
	require.Len(t, m.Pairs, 2)
	require.Equal(t, "a", m.Pairs[0].Key.Static)
}

func TestComposeChain(t *testing.T) {
	seq := parseOK(t, "[foo:a&][bar:&]")
	chain, ok := seq.Nodes[0].(*ComposeChainNode)
	require.True(t, ok)
	producer, ok := chain.Producer.(*NamedCallNode)
	require.True(t, ok)
	require.Equal(t, "foo", producer.Name)
	consumer, ok := chain.Consumer.(*NamedCallNode)
	require.True(t, ok)
	require.True(t, consumer.Compose)
	require.Len(t, consumer.Args, 1)
	_, ok = consumer.Args[0].Nodes[0].(*ComposeValueNode)
	require.True(t, ok)
}

func TestDynamicKeyPath(t *testing.T) {
	seq := parseOK(t, "<{key}>")
	get := seq.Nodes[0].(*VarGetNode)
	exprs := get.Path.DynamicKeyExprs()
	require.Len(t, exprs, 1)
}

func TestInvalidHintOnFragment(t *testing.T) {
	p := New(">plain text", "test", false)
	p.Parse()
	require.True(t, p.Diagnostics().HasErrors())
}

func TestUnclosedBlockDiagnostic(t *testing.T) {
	p := New("{a|b", "test", false)
	p.Parse()
	require.True(t, p.Diagnostics().HasErrors())
}

func TestDuplicateParamDiagnostic(t *testing.T) {
	p := New("[$f:a;a]{body}", "test", false)
	p.Parse()
	require.True(t, p.Diagnostics().HasErrors())
}

func TestAccessPathCannotStartWithIndex(t *testing.T) {
	for _, src := range []string{"<0>", "<^^0>", "</0>"} {
		p := New(src, "test", false)
		p.Parse()
		require.True(t, p.Diagnostics().HasErrors(), "expected a diagnostic for %q", src)
	}
}
