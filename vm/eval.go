package vm

// File : rant/vm/eval.go
//
// The dispatch table every ST node kind reduces to (spec §4.5's intent
// catalogue, reinterpreted as direct recursive cases rather than queued
// intents — see the package doc comment in vm.go). One rule threads
// through every case below: any sub-sequence evaluated for its VALUE
// (a var-def initialiser, a call argument, a dynamic key, a list/map
// element, an anon callee, an accessor fallback) goes through
// evalSequenceAsValue, which gives it its own OutputWriter and folds in
// the expression-depth counter (spec §5's value-stack limit); anything
// evaluated for its TEXT (a function body, a block element, the
// program root) goes through evalInto against the caller's own writer.
//
// Print-flag derivation: VarGetNode/ClosureNode/NamedCallNode/
// AnonCallNode/ComposeChainNode carry a Flag field and default to
// printing unless Sink. VarDefNode and VarSetNode carry no Flag field
// at all — by construction they always print their resulting value,
// matching real accessor semantics where assignment is itself a
// printing construct (traced against the worked example in spec §9:
// `<$x = 2> <$y = 3> <x>+<y>` prints "2 3 2+3", i.e. both definitions
// print before either variable is ever read back). FuncDefNode also
// carries no Flag field, but for the opposite reason: a declaration
// has no sensible textual form, so it never prints, full stop.
import (
	"github.com/textgen/rant/parser"
	"github.com/textgen/rant/resolver"
	"github.com/textgen/rant/scope"
	"github.com/textgen/rant/value"
)

// seqBody adapts a *parser.Sequence to value.Sequencer so a
// value.Function can carry a body without the value package depending
// on parser. Only vm ever constructs one, so callFunction can type-
// assert it back to the concrete sequence it needs to run.
type seqBody struct{ seq *parser.Sequence }

func (s *seqBody) SequenceName() string { return s.seq.Name }

// evalInto walks seq's nodes in order, writing directly into out. Used
// for every "printing" context: the program root, a function body, a
// block element.
func (vm *VM) evalInto(seq *parser.Sequence, out *OutputWriter) error {
	for _, node := range seq.Nodes {
		if err := vm.evalNode(node, out); err != nil {
			return err
		}
	}
	return nil
}

// evalSequenceAsValue evaluates seq for its resulting Value rather than
// its text, bracketed by the expression-depth counter (spec §5 "value
// stack depth"). This is the one choke point every nested expression —
// arguments, var-def/var-set initialisers, list/map elements, dynamic
// keys, accessor fallbacks, anon callees — funnels through.
func (vm *VM) evalSequenceAsValue(seq *parser.Sequence) (value.Value, error) {
	if err := vm.enterExpr(); err != nil {
		return value.Value{}, err
	}
	defer vm.leaveExpr()

	out := NewOutputWriter()
	if err := vm.evalInto(seq, out); err != nil {
		return value.Value{}, err
	}
	return out.Render(), nil
}

// evalNode dispatches a single ST node into out (spec §4.5's per-intent
// cases, one per Kind).
func (vm *VM) evalNode(node parser.Node, out *OutputWriter) error {
	switch n := node.(type) {

	case *parser.TextFragmentNode:
		out.WriteFrag(n.Text)
		return nil

	case *parser.WhitespaceNode:
		out.WriteWS(n.Text)
		return nil

	case *parser.IntegerNode:
		out.WriteValue(value.Int(n.Value))
		return nil

	case *parser.FloatNode:
		out.WriteValue(value.Float(n.Value))
		return nil

	case *parser.BooleanNode:
		out.WriteValue(value.Bool(n.Value))
		return nil

	case *parser.EmptyNode:
		out.WriteValue(value.Empty)
		return nil

	case *parser.ListInitNode:
		v, err := vm.evalListInit(n)
		if err != nil {
			return err
		}
		out.WriteValue(v)
		return nil

	case *parser.MapInitNode:
		v, err := vm.evalMapInit(n)
		if err != nil {
			return err
		}
		out.WriteValue(v)
		return nil

	case *parser.BlockNode:
		return vm.evalBlock(n, out)

	case *parser.VarDefNode:
		return vm.evalVarDef(n, out)

	case *parser.VarGetNode:
		return vm.evalVarGet(n, out)

	case *parser.VarSetNode:
		return vm.evalVarSet(n, out)

	case *parser.FuncDefNode:
		return vm.evalFuncDef(n)

	case *parser.ClosureNode:
		return vm.evalClosure(n, out)

	case *parser.NamedCallNode:
		return vm.evalNamedCall(n, out)

	case *parser.AnonCallNode:
		return vm.evalAnonCall(n, out)

	case *parser.DebugCursorNode:
		if top := vm.Calls.Top(); top != nil {
			top.Line, top.Col = n.P.Line, n.P.Column
		}
		return nil

	case *parser.ComposeChainNode:
		return vm.evalComposeChain(n, out)

	case *parser.ComposeValueNode:
		v, ok := vm.composeTop()
		if !ok {
			return newError(InvalidAccess, "no composed value in scope")
		}
		out.WriteValue(v)
		return nil

	default:
		return newError(UserError, "unhandled node kind %q", node.Kind())
	}
}

// evalListInit builds a List from one evaluated element per sub-sequence.
func (vm *VM) evalListInit(n *parser.ListInitNode) (value.Value, error) {
	items := make([]value.Value, 0, len(n.Elements))
	for _, elem := range n.Elements {
		v, err := vm.evalSequenceAsValue(elem)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
	}
	return value.ListOf(value.NewList(items...)), nil
}

// evalMapInit builds a Map, resolving each dynamic key through the same
// DynamicKeyExpression framing a path component would use.
func (vm *VM) evalMapInit(n *parser.MapInitNode) (value.Value, error) {
	m := value.NewMap()
	for _, pair := range n.Pairs {
		key := pair.Key.Static
		if pair.Key.Dynamic != nil {
			kv, err := vm.evalDynamicKey(pair.Key.Dynamic)
			if err != nil {
				return value.Value{}, err
			}
			key = kv.ToString()
		}
		v, err := vm.evalSequenceAsValue(pair.Value)
		if err != nil {
			return value.Value{}, err
		}
		m.Set(key, v)
	}
	return value.MapOf(m), nil
}

// evalDynamicKey evaluates a `{expr}` path component under its own
// DynamicKeyExpression frame (spec §4.5 flavor catalogue).
func (vm *VM) evalDynamicKey(expr *parser.Sequence) (value.Value, error) {
	if err := vm.Calls.Push(&scope.Frame{Flavor: scope.DynamicKeyExpression, Origin: vm.Origin, SeqName: expr.Name}); err != nil {
		return value.Value{}, vm.wrapStackError(err)
	}
	defer vm.Calls.Pop()
	return vm.evalSequenceAsValue(expr)
}

// evalBlock drives one block through the resolver's per-iteration
// algorithm, writing each chosen element's (and separator's) value into
// out, and catching break/continue signals at element boundaries (spec
// §4.4, §4.5 "Block -> push resolver state").
func (vm *VM) evalBlock(n *parser.BlockNode, out *OutputWriter) error {
	state := vm.Res.PushBlock(n.Elements, n.Flag, parser.PrintNone)
	flavor := scope.BlockElement
	if state.IsRepeater() {
		flavor = scope.RepeaterElement
	}

	for {
		action, err := state.NextElement(vm)
		if err != nil {
			vm.Res.PopBlock()
			return newError(SelectorErrorKind, "%s", err.Error())
		}
		if action == nil {
			break
		}

		switch action.Kind {
		case resolver.ActionElement:
			if perr := vm.Calls.Push(&scope.Frame{Flavor: flavor, Origin: vm.Origin, SeqName: action.Element.Name}); perr != nil {
				vm.Res.PopBlock()
				return vm.wrapStackError(perr)
			}
			elemOut := NewOutputWriter()
			eerr := vm.evalInto(action.Element, elemOut)
			vm.Calls.Pop()

			if eerr != nil {
				if sig, ok := asSignal(eerr); ok {
					switch sig.kind {
					case signalBreak:
						state.ForceStop = true
						continue
					case signalContinue:
						continue
					}
				}
				vm.Res.PopBlock()
				return eerr
			}
			if state.Flag != parser.PrintSink {
				out.WriteValue(elemOut.Render())
			}

		case resolver.ActionSeparator:
			if sepVal, ok := action.Separator.(value.Value); ok {
				out.WriteValue(sepVal)
			}
		}
	}

	vm.Res.PopBlock()
	return nil
}

// evalVarDef evaluates the (optional) initialiser, defines the
// variable, and always prints the resulting value (see package doc).
func (vm *VM) evalVarDef(n *parser.VarDefNode, out *OutputWriter) error {
	v := value.Empty
	if n.Init != nil {
		var err error
		v, err = vm.evalSequenceAsValue(n.Init)
		if err != nil {
			return err
		}
	}
	vm.Calls.Locals.DefVarValue(vm, n.Name, convertAccessKind(n.Access), n.DescopeLevels, v)
	out.WriteValue(v)
	return nil
}

// evalVarGet resolves the path, falling back to Fallback (or Empty) on
// a miss, then prints unless Sink.
func (vm *VM) evalVarGet(n *parser.VarGetNode, out *OutputWriter) error {
	v, ok, err := vm.resolvePath(n.Path)
	if err != nil {
		return err
	}
	if !ok {
		if n.Fallback != nil {
			fv, ferr := vm.evalSequenceAsValue(n.Fallback)
			if ferr != nil {
				return ferr
			}
			v = fv
		} else {
			v = value.Empty
		}
	}
	if n.Flag != parser.PrintSink {
		out.WriteValue(v)
	} else {
		out.Discard()
	}
	return nil
}

// evalVarSet evaluates Value, assigns it through the path, and always
// prints it (see package doc).
func (vm *VM) evalVarSet(n *parser.VarSetNode, out *OutputWriter) error {
	v, err := vm.evalSequenceAsValue(n.Value)
	if err != nil {
		return err
	}
	if err := vm.setPath(n.Path, v); err != nil {
		return err
	}
	out.WriteValue(v)
	return nil
}

// evalFuncDef synthesises a Function value and defines it at Path.
// FuncDefNode never prints: a declaration has no output of its own.
func (vm *VM) evalFuncDef(n *parser.FuncDefNode) error {
	fn := &value.Function{
		Params:        convertParams(n.Params),
		MinArgCount:   parser.MinArgCount(n.Params),
		VariadicStart: parser.VariadicStart(n.Params),
		Body:          &seqBody{seq: n.Body},
		Captured:      vm.captureValues(n.Captured),
	}
	if name, ok := n.Path.RootName(); ok {
		fn.Name = name
	}
	return vm.defPath(n.Path, value.Func(fn))
}

// evalClosure synthesises an anonymous Function value and prints it
// unless Sink.
func (vm *VM) evalClosure(n *parser.ClosureNode, out *OutputWriter) error {
	fn := &value.Function{
		Params:        convertParams(n.Params),
		MinArgCount:   parser.MinArgCount(n.Params),
		VariadicStart: parser.VariadicStart(n.Params),
		Body:          &seqBody{seq: n.Body},
		Captured:      vm.captureValues(n.Captured),
	}
	fv := value.Func(fn)
	if n.Flag != parser.PrintSink {
		out.WriteValue(fv)
	} else {
		out.Discard()
	}
	return nil
}

// evalNamedCall resolves Name via trickle-down lookup, evaluates
// arguments, invokes, and prints the result unless Sink.
func (vm *VM) evalNamedCall(n *parser.NamedCallNode, out *OutputWriter) error {
	fnVal, ok := vm.Calls.Locals.GetVarValue(vm, n.Name, scope.Local, 0, true)
	if !ok || !fnVal.IsFunction() {
		return newError(InvalidAccess, "undefined function %q", n.Name)
	}
	args, err := vm.evalArgs(n.Args)
	if err != nil {
		return err
	}
	result, err := vm.Invoke(fnVal, args)
	if err != nil {
		return err
	}
	vm.writeCallResult(result, n.Flag, out)
	return nil
}

// evalAnonCall evaluates Callee for its Function value, evaluates
// arguments, invokes, and prints the result unless Sink.
func (vm *VM) evalAnonCall(n *parser.AnonCallNode, out *OutputWriter) error {
	if err := vm.Calls.Push(&scope.Frame{Flavor: scope.ArgumentExpression, Origin: vm.Origin, SeqName: n.Callee.Name}); err != nil {
		return vm.wrapStackError(err)
	}
	calleeVal, err := vm.evalSequenceAsValue(n.Callee)
	vm.Calls.Pop()
	if err != nil {
		return err
	}
	args, err := vm.evalArgs(n.Args)
	if err != nil {
		return err
	}
	result, err := vm.Invoke(calleeVal, args)
	if err != nil {
		return err
	}
	vm.writeCallResult(result, n.Flag, out)
	return nil
}

// evalArgs evaluates each argument sequence under its own
// ArgumentExpression frame (its own Locals layer and depth accounting)
// and its own attribute-override scope, so a block-attribute native
// evaluated inside one argument never bleeds into a sibling argument or
// the call's own pending frame (spec §4.4 "PushAttrs... argument
// evaluation that itself contains a block").
func (vm *VM) evalArgs(args []*parser.Sequence) ([]value.Value, error) {
	out := make([]value.Value, 0, len(args))
	for _, a := range args {
		if err := vm.Calls.Push(&scope.Frame{Flavor: scope.ArgumentExpression, Origin: vm.Origin, SeqName: a.Name}); err != nil {
			return nil, vm.wrapStackError(err)
		}
		vm.Res.PushAttrs()
		v, err := vm.evalSequenceAsValue(a)
		vm.Res.PopAttrs()
		vm.Calls.Pop()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (vm *VM) writeCallResult(result value.Value, flag parser.PrintFlag, out *OutputWriter) {
	if flag != parser.PrintSink {
		out.WriteValue(result)
	} else {
		out.Discard()
	}
}

// evalComposeChain evaluates Producer standalone, makes its value
// available to every ComposeValueNode the Consumer's own evaluation
// encounters, then forwards the Consumer's printed result per the
// chain's own Flag (spec §4.2/§9's compose open question, resolved in
// DESIGN.md: the chain's Flag gates forwarding, but the Consumer's own
// Flag still governs whether it wrote anything at all).
func (vm *VM) evalComposeChain(n *parser.ComposeChainNode, out *OutputWriter) error {
	prodOut := NewOutputWriter()
	if err := vm.evalNode(n.Producer, prodOut); err != nil {
		return err
	}
	vm.pushCompose(prodOut.Render())
	consOut := NewOutputWriter()
	cerr := vm.evalNode(n.Consumer, consOut)
	vm.popCompose()
	if cerr != nil {
		return cerr
	}
	if n.Flag != parser.PrintSink && consOut.Wrote() {
		out.WriteValue(consOut.Render())
	} else {
		out.Discard()
	}
	return nil
}

func (vm *VM) pushCompose(v value.Value) { vm.composeStk = append(vm.composeStk, v) }

func (vm *VM) popCompose() {
	if n := len(vm.composeStk); n > 0 {
		vm.composeStk = vm.composeStk[:n-1]
	}
}

func (vm *VM) composeTop() (value.Value, bool) {
	n := len(vm.composeStk)
	if n == 0 {
		return value.Value{}, false
	}
	return vm.composeStk[n-1], true
}

// convertAccessKind translates the parser's AccessKind into scope's,
// kept as distinct types so neither package depends on the other.
func convertAccessKind(k parser.AccessKind) scope.AccessKind {
	switch k {
	case parser.Descope:
		return scope.Descope
	case parser.ExplicitGlobal:
		return scope.ExplicitGlobal
	default:
		return scope.Local
	}
}

// resolveRoot resolves an AccessPath's first component against the
// scope chain (spec §3 "Setters" — the lookup half). AnonymousValue
// resolves to the nearest enclosing compose-chain value (DESIGN.md's
// resolution of what "the root value being accessed" means absent a
// dedicated argument slot on the AST node).
func (vm *VM) resolveRoot(path *parser.AccessPath) (value.Value, bool, error) {
	comp := path.Components[0]
	switch comp.Kind {
	case parser.CompName:
		v, ok := vm.Calls.Locals.GetVarValue(vm, comp.Name, convertAccessKind(path.Kind), path.DescopeLevels, false)
		return v, ok, nil
	case parser.CompDynamicKey:
		key, err := vm.evalDynamicKey(comp.Expr)
		if err != nil {
			return value.Value{}, false, err
		}
		v, ok := vm.Calls.Locals.GetVarValue(vm, key.ToString(), convertAccessKind(path.Kind), path.DescopeLevels, false)
		return v, ok, nil
	case parser.CompAnonymousValue:
		v, ok := vm.composeTop()
		return v, ok, nil
	default:
		return value.Value{}, false, newError(InvalidAccess, "access path cannot start with an index")
	}
}

// rootName/rootDynamicKey resolve just the name a setter/definer needs
// for the path's first component, without touching scope (callers look
// it up themselves once they know which AccessKind/DescopeLevels to
// use).
func (vm *VM) rootName(comp parser.PathComponent) (string, error) {
	switch comp.Kind {
	case parser.CompName:
		return comp.Name, nil
	case parser.CompDynamicKey:
		key, err := vm.evalDynamicKey(comp.Expr)
		if err != nil {
			return "", err
		}
		return key.ToString(), nil
	default:
		return "", newError(InvalidAccess, "cannot assign to this access path")
	}
}

// stepKey evaluates one non-root path component into the lookup key it
// represents against a container: a list index or a map key. DynamicKey
// components evaluate their sub-expression; Name/Index components use
// their literal field directly.
func (vm *VM) stepKey(comp parser.PathComponent) (int64, string, error) {
	switch comp.Kind {
	case parser.CompIndex:
		return comp.Index, "", nil
	case parser.CompName:
		return 0, comp.Name, nil
	case parser.CompDynamicKey:
		key, err := vm.evalDynamicKey(comp.Expr)
		if err != nil {
			return 0, "", err
		}
		return 0, key.ToString(), nil
	default:
		return 0, "", newError(InvalidAccess, "invalid access-path component")
	}
}

// stepInto reads one non-root component out of container (spec §3
// "Access path": List/Map navigation after the root). An
// already-resolved container that isn't indexable, or an out-of-range
// index / missing key, is a hard runtime error (spec §8 scenario 6:
// `<list/99>` -> IndexError), not a fallback-eligible miss — only the
// root lookup itself can miss softly.
func (vm *VM) stepInto(container value.Value, comp parser.PathComponent) (value.Value, error) {
	if comp.Kind == parser.CompIndex {
		idx, _, err := vm.stepKey(comp)
		if err != nil {
			return value.Value{}, err
		}
		if container.Kind != value.KindList {
			return value.Value{}, newError(IndexError, "cannot index into a non-list value")
		}
		v, ok := container.Lst.Index(idx)
		if !ok {
			return value.Value{}, newError(IndexError, "index %d out of range", idx)
		}
		return v, nil
	}

	_, key, err := vm.stepKey(comp)
	if err != nil {
		return value.Value{}, err
	}
	if container.Kind != value.KindMap {
		return value.Value{}, newError(KeyError, "cannot key into a non-map value")
	}
	v, ok := container.Mp.Get(key)
	if !ok {
		return value.Value{}, newError(KeyError, "no such key %q", key)
	}
	return v, nil
}

// resolvePath resolves a full, possibly multi-component AccessPath to a
// value (`<list/0>`, `<m/k2>`, spec §8 scenarios 6/7): the root resolves
// against scope, then each subsequent `/`-separated component navigates
// into the previous step's value.
func (vm *VM) resolvePath(path *parser.AccessPath) (value.Value, bool, error) {
	v, ok, err := vm.resolveRoot(path)
	if err != nil || !ok {
		return v, ok, err
	}
	for _, comp := range path.Components[1:] {
		v, err = vm.stepInto(v, comp)
		if err != nil {
			return value.Value{}, false, err
		}
	}
	return v, true, nil
}

// setPath assigns through an AccessPath (spec §3 "Setters", final
// component writes). A single-component path updates an existing
// scope binding directly (InvalidAccess if none exists — assignment,
// unlike definition, never creates a fresh binding). A multi-component
// path resolves every component up to, but not including, the last,
// then writes the last component into that container (IndexError/
// KeyError on an out-of-range index or non-indexable container, same
// as a read).
func (vm *VM) setPath(path *parser.AccessPath, v value.Value) error {
	if len(path.Components) == 1 {
		name, err := vm.rootName(path.Components[0])
		if err != nil {
			return err
		}
		if !vm.Calls.Locals.SetVarValue(vm, name, convertAccessKind(path.Kind), path.DescopeLevels, v) {
			return newError(InvalidAccess, "undefined variable %q", name)
		}
		return nil
	}

	container, ok, err := vm.resolveRoot(path)
	if err != nil {
		return err
	}
	if !ok {
		return newError(InvalidAccess, "undefined variable in access path")
	}
	mid := path.Components[1 : len(path.Components)-1]
	for _, comp := range mid {
		container, err = vm.stepInto(container, comp)
		if err != nil {
			return err
		}
	}

	last := path.Components[len(path.Components)-1]
	if last.Kind == parser.CompIndex {
		idx, _, err := vm.stepKey(last)
		if err != nil {
			return err
		}
		if container.Kind != value.KindList {
			return newError(IndexError, "cannot index into a non-list value")
		}
		if !container.Lst.SetIndex(idx, v) {
			return newError(IndexError, "index %d out of range", idx)
		}
		return nil
	}

	_, key, err := vm.stepKey(last)
	if err != nil {
		return err
	}
	if container.Kind != value.KindMap {
		return newError(KeyError, "cannot key into a non-map value")
	}
	container.Mp.Set(key, v)
	return nil
}

// defPath always defines a fresh binding (spec §3 "auto_def = true...
// used by function definitions"), unlike setPath which only updates.
// Function definitions always name a single-component path (the
// parser only ever builds FuncDefNode.Path from a bare name), so this
// never walks a chain.
func (vm *VM) defPath(path *parser.AccessPath, v value.Value) error {
	name, err := vm.rootName(path.Components[0])
	if err != nil {
		return newError(InvalidAccess, "cannot define a function at this access path")
	}
	vm.Calls.Locals.DefVarValue(vm, name, convertAccessKind(path.Kind), path.DescopeLevels, v)
	return nil
}

// convertParams translates parser.Param into value.Param; the two
// Varity enumerations share ordinal order by construction (both
// Required, Optional, VariadicStar, VariadicPlus) so this is a direct
// field copy, not a lookup table.
func convertParams(ps []parser.Param) []value.Param {
	out := make([]value.Param, len(ps))
	for i, p := range ps {
		out[i] = value.Param{Name: p.Name, Varity: value.Varity(p.Varity)}
	}
	return out
}

// captureValues snapshots the current value of every free variable a
// closure's capture pass found (spec §4.2 capture pass), read the same
// way any other Local lookup is (preferFunction=false: a captured
// reference is whatever value currently occupies that name, callable or
// not).
func (vm *VM) captureValues(names []string) map[string]value.Value {
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]value.Value, len(names))
	for _, name := range names {
		if v, ok := vm.Calls.Locals.GetVarValue(vm, name, scope.Local, 0, false); ok {
			out[name] = v
		}
	}
	return out
}
