// Package value defines the runtime value model: a tagged union of
// Integer, Float, Boolean, String, List, Map, Function, and Empty
// (spec §3 "Value"), each with total conversions to every other kind.
//
// File : rant/value/value.go
//
// Grounded on the teacher's tagged-interface convention
// (objects.GoMixObject: GetType/ToString/ToObject implemented by one
// concrete struct per kind), carried over from objects/objects.go and
// regrown to the spec's value set: List/Map replace the teacher's
// Array/Tuple/Set/Struct/Object split (this domain has one shared-
// mutable list and one prototype-chained map, nothing else), and the
// teacher's Break/Continue/Range sentinel objects are dropped — this
// domain signals break/return/continue through the VM's frame-flavor
// unwinding instead of sentinel values (spec §4.5).
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/textgen/rant/resolver"
)

// Kind identifies a Value's concrete variant.
type Kind string

const (
	KindInteger  Kind = "integer"
	KindFloat    Kind = "float"
	KindBoolean  Kind = "boolean"
	KindString   Kind = "string"
	KindList     Kind = "list"
	KindMap      Kind = "map"
	KindFunction Kind = "function"
	KindEmpty    Kind = "empty"
)

// Value is the tagged union every ST node evaluates to and every
// native function exchanges. Only the field matching Kind is
// meaningful; List/Map/Function hold shared-mutable pointers (spec §5
// "shared by reference").
type Value struct {
	Kind Kind

	Int  int64
	Flt  float64
	Bool bool
	Str  string
	Lst  *List
	Mp   *Map
	Fn   *Function
}

func Int(n int64) Value     { return Value{Kind: KindInteger, Int: n} }
func Float(f float64) Value { return Value{Kind: KindFloat, Flt: f} }
func Bool(b bool) Value     { return Value{Kind: KindBoolean, Bool: b} }
func Str(s string) Value    { return Value{Kind: KindString, Str: s} }
func ListOf(l *List) Value  { return Value{Kind: KindList, Lst: l} }
func MapOf(m *Map) Value    { return Value{Kind: KindMap, Mp: m} }
func Func(f *Function) Value {
	return Value{Kind: KindFunction, Fn: f}
}

var Empty = Value{Kind: KindEmpty}

// List is a shared-mutable, heterogeneous, index-addressable sequence
// (spec §3 "List", §5 "shared by reference"). A bare struct wrapping a
// slice, mutated in place by the setter engine — never copied on
// assignment.
type List struct {
	Items []Value
}

func NewList(items ...Value) *List { return &List{Items: items} }

// Len is the element count.
func (l *List) Len() int { return len(l.Items) }

// Index resolves spec's "negative counts from the end" convention,
// returning (value, ok).
func (l *List) Index(i int64) (Value, bool) {
	n := int64(len(l.Items))
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return Value{}, false
	}
	return l.Items[i], true
}

func (l *List) SetIndex(i int64, v Value) bool {
	n := int64(len(l.Items))
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return false
	}
	l.Items[i] = v
	return true
}

// MaxPrototypeDepth bounds Map.Get's prototype-chain walk (spec §5:
// "cycles are possible through maps embedding maps... bounded traversal
// is used" during string conversion; the same bound protects lookup).
const MaxPrototypeDepth = 64

// Map is a shared-mutable string-keyed dictionary with an optional
// prototype reference consulted on lookup miss (spec §3 "Map").
type Map struct {
	Entries   map[string]Value
	Prototype *Map
}

func NewMap() *Map { return &Map{Entries: map[string]Value{}} }

// Get walks the prototype chain, innermost first, up to
// MaxPrototypeDepth hops.
func (m *Map) Get(key string) (Value, bool) {
	cur := m
	for depth := 0; cur != nil && depth < MaxPrototypeDepth; depth++ {
		if v, ok := cur.Entries[key]; ok {
			return v, true
		}
		cur = cur.Prototype
	}
	return Value{}, false
}

// Set always writes to this map's own entries, never the prototype.
func (m *Map) Set(key string, v Value) {
	m.Entries[key] = v
}

// Function is a callable value: either a user-defined closure (Body +
// captured lexical environment) or a native Go implementation.
// MinArgCount/VariadicStart are precomputed at definition time so the
// calling convention (spec §4.5) never re-derives them per call.
type Function struct {
	Name          string
	Params        []Param
	MinArgCount   int
	VariadicStart int // len(Params) if no variadic parameter

	Body Sequencer // nil for native functions

	// Captured holds the values closed over at definition time (spec
	// §4.2 capture pass), keyed by name. Native functions leave this nil.
	Captured map[string]Value

	Native NativeFunc // nil for user-defined functions
}

// Param mirrors parser.Param without importing the parser package
// (value must not depend on parser — the VM constructs Functions from
// parser.FuncDefNode/ClosureNode fields directly).
type Param struct {
	Name   string
	Varity Varity
}

type Varity int

const (
	Required Varity = iota
	Optional
	VariadicStar
	VariadicPlus
)

// NativeFunc is the signature every built-in function implements (spec
// §6 RegisterNativeFunction's callback) — grounded on the teacher's
// std.CallbackFunc(rt Runtime, args []Object) Object, re-typed onto
// value.Value and given an explicit error return instead of an Error
// sentinel value.
type NativeFunc func(rt Runtime, args []Value) (Value, error)

// Runtime is the handle a native function receives: just enough of the
// VM to call back into user code and touch globals (spec §6 "callback
// receives a VM handle"). Defined here (not in vm/) so value has no
// import-cycle back onto vm.
type Runtime interface {
	Invoke(fn Value, args []Value) (Value, error)
	Global(name string) (Value, bool)
	SetGlobal(name string, v Value)
	RandUint64() uint64

	// Resolver exposes the active block-iteration state so block-
	// attribute natives ([rep:n], [sep:x], [sel:mode], [if:cond], ...)
	// can mutate it directly rather than through a dozen one-off
	// passthrough methods. resolver has no dependency on value, so this
	// does not create an import cycle.
	Resolver() *resolver.Resolver
}

// Sequencer is the minimal view of parser.Sequence the value package
// needs (a function body to run) without importing parser, which
// would create value <-> parser <-> value cycles. vm binds the
// concrete *parser.Sequence to this interface at the call boundary.
type Sequencer interface {
	SequenceName() string
}

// Truthy reports whether v is truthy for conditional natives (if/while):
// booleans by their value, integers/floats by nonzero, strings/lists/
// maps by nonempty, Empty is always false, functions are always true.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindBoolean:
		return v.Bool
	case KindInteger:
		return v.Int != 0
	case KindFloat:
		return v.Flt != 0
	case KindString:
		return v.Str != ""
	case KindList:
		return v.Lst != nil && len(v.Lst.Items) > 0
	case KindMap:
		return v.Mp != nil && len(v.Mp.Entries) > 0
	case KindFunction:
		return true
	default:
		return false
	}
}

// ToInt is a total conversion (spec §6 "conversions ... each total"):
// non-numeric values convert to 0.
func (v Value) ToInt() int64 {
	switch v.Kind {
	case KindInteger:
		return v.Int
	case KindFloat:
		return int64(v.Flt)
	case KindBoolean:
		if v.Bool {
			return 1
		}
		return 0
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToFloat is a total conversion; non-numeric values convert to 0.
func (v Value) ToFloat() float64 {
	switch v.Kind {
	case KindFloat:
		return v.Flt
	case KindInteger:
		return float64(v.Int)
	case KindBoolean:
		if v.Bool {
			return 1
		}
		return 0
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ToString is a total conversion used both by the user-facing `string`
// native and by the VM's print path; Map/List conversion is bounded by
// MaxPrototypeDepth to tolerate map-in-map cycles (spec §5).
func (v Value) ToString() string {
	return v.toString(0)
}

// toString renders v nested depth lists/maps deep.
func (v Value) toString(depth int) string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Flt, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindEmpty:
		return ""
	case KindFunction:
		if v.Fn != nil && v.Fn.Name != "" {
			return "<function " + v.Fn.Name + ">"
		}
		return "<function>"
	case KindList:
		return listToString(v.Lst, depth)
	case KindMap:
		return mapToString(v.Mp, depth)
	default:
		return ""
	}
}

func listToString(l *List, depth int) string {
	if l == nil || depth >= MaxPrototypeDepth {
		return "[...]"
	}
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.toString(depth + 1)
	}
	return "(" + strings.Join(parts, "; ") + ")"
}

func mapToString(m *Map, depth int) string {
	if m == nil || depth >= MaxPrototypeDepth {
		return "{...}"
	}
	parts := make([]string, 0, len(m.Entries))
	for k, v := range m.Entries {
		parts = append(parts, fmt.Sprintf("%s = %s", k, v.toString(depth+1)))
	}
	return "@(" + strings.Join(parts, "; ") + ")"
}

// Kind queries, mirroring the teacher's GetType()-driven dispatch.
func (v Value) IsEmpty() bool    { return v.Kind == KindEmpty }
func (v Value) IsFunction() bool { return v.Kind == KindFunction }
func (v Value) IsNumeric() bool  { return v.Kind == KindInteger || v.Kind == KindFloat }

// Equal is spec §3's total equality function, used by the comparison
// natives (`eq`, `neq`, ...). Numeric kinds compare across
// Integer/Float by value; List/Map/Function compare by identity since
// they are shared-mutable (spec §5 "shared by reference" — two
// distinct lists with equal contents are not the same list); every
// other pairing (including mismatched non-numeric kinds) is false.
func (v Value) Equal(other Value) bool {
	switch {
	case v.IsNumeric() && other.IsNumeric():
		if v.Kind == KindInteger && other.Kind == KindInteger {
			return v.Int == other.Int
		}
		return v.ToFloat() == other.ToFloat()
	case v.Kind != other.Kind:
		return false
	}
	switch v.Kind {
	case KindBoolean:
		return v.Bool == other.Bool
	case KindString:
		return v.Str == other.Str
	case KindEmpty:
		return true
	case KindList:
		return v.Lst == other.Lst
	case KindMap:
		return v.Mp == other.Mp
	case KindFunction:
		return v.Fn == other.Fn
	default:
		return false
	}
}
