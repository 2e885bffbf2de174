// Package scope implements the runtime call stack: a layered variable
// map (one layer per pushed frame, spec §4.5) plus the frame-flavor
// bookkeeping `break`/`return`/`continue` use to pick an unwind target.
//
// File : rant/scope/scope.go
//
// Grounded on the teacher's scope/scope.go (parent-chained Scope with
// LookUp/Bind/Assign), but regrown onto a flat layer stack matching
// original_source/src/runtime/stack.rs's CallStack+ScopeMap shape: Rant
// layers one variable map per pushed frame regardless of flavor, so a
// function body's own layer nests on top of whatever frame called it
// rather than on its lexical definition site — closures instead reach
// their free variables through the parser's captured-value map, rebound
// into the new layer at call time (see vm's calling convention). A flat
// layer slice models Descope(n)'s "skip n layers, then search" directly;
// a parent-pointer-per-Scope tree would need the same skip-then-walk
// logic anyway, so the flat form is simpler and just as faithful.
package scope

import "github.com/textgen/rant/value"

// Variable is a mutable binding cell. Stored as a pointer so Assign and
// the setter engine mutate the binding in place rather than rebinding a
// fresh map entry (mirrors the teacher's Assign returning the owning
// scope to mutate directly).
type Variable struct {
	Value value.Value
}

// layer is the variable map contributed by one pushed frame.
type layer struct {
	vars map[string]*Variable
}

func newLayer() *layer { return &layer{vars: make(map[string]*Variable)} }

// AccessKind mirrors parser.AccessKind without importing parser (scope
// must not depend on parser; the VM translates parser.AccessPath.Kind
// into this type at the call boundary).
type AccessKind int

const (
	Local AccessKind = iota
	Descope
	ExplicitGlobal
)

// Globals is the subset of value.Runtime the call stack needs to fall
// back to the global map once the local layer stack misses.
type Globals interface {
	Global(name string) (value.Value, bool)
	SetGlobal(name string, v value.Value)
}

// Locals is the layered variable-binding stack shared by every frame on
// a CallStack. Kept separate from CallStack's frame slice (rather than
// folded into Frame) because layers must push/pop in strict lock-step
// with frames, same as quickscope::ScopeMap does alongside Rant's
// CallStackVector.
type Locals struct {
	layers []*layer
}

func NewLocals() *Locals { return &Locals{} }

func (l *Locals) pushLayer() { l.layers = append(l.layers, newLayer()) }

func (l *Locals) popLayer() {
	if n := len(l.layers); n > 0 {
		l.layers = l.layers[:n-1]
	}
}

func (l *Locals) Depth() int { return len(l.layers) }

// top returns the index of the layer `skip` levels below the current
// top (Descope(skip) semantics), or -1 if that skips past the bottom.
func (l *Locals) startIndex(skip int) int {
	idx := len(l.layers) - 1 - skip
	if idx < 0 {
		return -1
	}
	return idx
}

// get scans layers from `start` down to 0, innermost first, returning
// the first binding found.
func (l *Locals) get(id string, start int) (*Variable, bool) {
	for i := start; i >= 0; i-- {
		if v, ok := l.layers[i].vars[id]; ok {
			return v, true
		}
	}
	return nil, false
}

// getAll collects every binding named id across layers start..0,
// innermost first — used for trickle-down function lookup.
func (l *Locals) getAll(id string, start int) []*Variable {
	var out []*Variable
	for i := start; i >= 0; i-- {
		if v, ok := l.layers[i].vars[id]; ok {
			out = append(out, v)
		}
	}
	return out
}

// define binds id in the layer `skip` levels below the top.
func (l *Locals) define(id string, skip int, val value.Value) bool {
	idx := l.startIndex(skip)
	if idx < 0 {
		return false
	}
	l.layers[idx].vars[id] = &Variable{Value: val}
	return true
}

// trickleDownCallable returns the topmost binding, falling through
// lower layers (and finally globals) to find a callable value if the
// topmost binding isn't one (spec §4.5 "function trickle-down").
func trickleDownCallable(vars []*Variable, globals Globals, id string) (value.Value, bool) {
	if len(vars) == 0 {
		return value.Value{}, false
	}
	top := vars[0]
	if top.Value.IsFunction() {
		return top.Value, true
	}
	for _, v := range vars[1:] {
		if v.Value.IsFunction() {
			return v.Value, true
		}
	}
	if gv, ok := globals.Global(id); ok && gv.IsFunction() {
		return gv, true
	}
	return top.Value, true
}

// GetVarValue resolves id under the given access kind (spec §4.5
// "Variable resolution"). preferFunction requests trickle-down lookup,
// used for the callee position of a named call.
func (l *Locals) GetVarValue(globals Globals, id string, kind AccessKind, descopeLevels int, preferFunction bool) (value.Value, bool) {
	switch kind {
	case Local:
		start := l.startIndex(0)
		if preferFunction {
			if vars := l.getAll(id, start); len(vars) > 0 {
				return trickleDownCallable(vars, globals, id)
			}
		} else if v, ok := l.get(id, start); ok {
			return v.Value, true
		}
	case Descope:
		start := l.startIndex(descopeLevels)
		if start >= 0 {
			if preferFunction {
				if vars := l.getAll(id, start); len(vars) > 0 {
					return trickleDownCallable(vars, globals, id)
				}
			} else if v, ok := l.get(id, start); ok {
				return v.Value, true
			}
		}
	case ExplicitGlobal:
		// fall through to globals below
	}
	return globals.Global(id)
}

// SetVarValue updates an existing binding in place, preferring the
// lexical layer stack and falling back to globals (spec §4.5).
func (l *Locals) SetVarValue(globals Globals, id string, kind AccessKind, descopeLevels int, val value.Value) bool {
	switch kind {
	case Local:
		if v, ok := l.get(id, l.startIndex(0)); ok {
			v.Value = val
			return true
		}
	case Descope:
		start := l.startIndex(descopeLevels)
		if start >= 0 {
			if v, ok := l.get(id, start); ok {
				v.Value = val
				return true
			}
		}
	case ExplicitGlobal:
	}
	if _, ok := globals.Global(id); ok {
		globals.SetGlobal(id, val)
		return true
	}
	return false
}

// DefVarValue introduces a new binding (spec §3 VarDef), always writing
// to the requested scope regardless of any existing binding there.
func (l *Locals) DefVarValue(globals Globals, id string, kind AccessKind, descopeLevels int, val value.Value) {
	switch kind {
	case Local:
		l.define(id, 0, val)
	case Descope:
		if !l.define(id, descopeLevels, val) {
			globals.SetGlobal(id, val)
		}
	case ExplicitGlobal:
		globals.SetGlobal(id, val)
	}
}
