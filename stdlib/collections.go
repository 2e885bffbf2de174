package stdlib

// File : rant/stdlib/collections.go
//
// List/Map natives — named per original_source/src/stdlib.rs's
// "Collection functions" and "List functions" groups (push, pop,
// index-of, join, sort, sorted, reverse, keys, has), bodies adapted
// from the teacher's std/list.go and std/maps.go element-at-a-time
// style onto value.List/value.Map's shared-mutable slice/map fields.
// Sorting has no comparator callback (the original's csort/csorted):
// elements compare numerically if every element is numeric, otherwise
// lexically by ToString — a deliberate narrowing, since spec §3 defines
// no ordering relation over arbitrary Values and a callback-based
// comparator is better served by `call` (general.go) composed with a
// user-level sort than a bespin one here.

import (
	"sort"
	"strings"

	"github.com/textgen/rant/value"
)

var collectionDefs = []Def{
	{Name: "push", Params: []value.Param{req("list"), plus("values")}, Fn: pushFn},
	{Name: "pop", Params: []value.Param{req("list")}, Fn: popFn},
	{Name: "index-of", Params: []value.Param{req("list"), req("val")}, Fn: indexOfFn},
	{Name: "join", Params: []value.Param{req("list"), opt("sep")}, Fn: joinFn},
	{Name: "sort", Params: []value.Param{req("list")}, Fn: sortFn},
	{Name: "sorted", Params: []value.Param{req("list")}, Fn: sortedFn},
	{Name: "reverse", Params: []value.Param{req("list")}, Fn: reverseFn},
	{Name: "keys", Params: []value.Param{req("map")}, Fn: keysFn},
	{Name: "has", Params: []value.Param{req("container"), req("val")}, Fn: hasFn},
	{Name: "get", Params: []value.Param{req("container"), req("key")}, Fn: getFn},
	{Name: "set", Params: []value.Param{req("container"), req("key"), req("val")}, Fn: setFn},
}

// getFn and setFn are an expression-level counterpart to what
// vm/eval.go's resolvePath/setPath already do for `<list/0>`-style
// access paths (parser/accessor.go parses `/`-chained Name/Index/
// DynamicKey components; the VM walks them directly against
// value.List/value.Map, never calling into stdlib). These two natives
// exist so the same indexing is reachable as an ordinary function call
// too — e.g. inside a user function working on a container that
// arrived as a plain argument, where there is no access-path syntax to
// write at all.
func getFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("get", len(args), 2)
	}
	switch args[0].Kind {
	case value.KindList:
		v, ok := args[0].Lst.Index(args[1].ToInt())
		if !ok {
			return value.Empty, argErrorf("get", "index %d out of range", args[1].ToInt())
		}
		return v, nil
	case value.KindMap:
		v, ok := args[0].Mp.Get(args[1].ToString())
		if !ok {
			return value.Empty, argErrorf("get", "key %q not found", args[1].ToString())
		}
		return v, nil
	default:
		return value.Empty, argErrorf("get", "expects a list or map argument, got %s", args[0].Kind)
	}
}

func setFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return value.Empty, wantArgs("set", len(args), 3)
	}
	switch args[0].Kind {
	case value.KindList:
		if !args[0].Lst.SetIndex(args[1].ToInt(), args[2]) {
			return value.Empty, argErrorf("set", "index %d out of range", args[1].ToInt())
		}
		return args[0], nil
	case value.KindMap:
		args[0].Mp.Set(args[1].ToString(), args[2])
		return args[0], nil
	default:
		return value.Empty, argErrorf("set", "expects a list or map argument, got %s", args[0].Kind)
	}
}

func wantList(name string, v value.Value) error {
	if v.Kind != value.KindList {
		return argErrorf(name, "expects a list argument, got %s", v.Kind)
	}
	return nil
}

func pushFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Empty, wantAtLeast("push", len(args), 2)
	}
	if err := wantList("push", args[0]); err != nil {
		return value.Empty, err
	}
	args[0].Lst.Items = append(args[0].Lst.Items, args[1:]...)
	return args[0], nil
}

func popFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("pop", len(args), 1)
	}
	if err := wantList("pop", args[0]); err != nil {
		return value.Empty, err
	}
	items := args[0].Lst.Items
	if len(items) == 0 {
		return value.Empty, nil
	}
	last := items[len(items)-1]
	args[0].Lst.Items = items[:len(items)-1]
	return last, nil
}

func indexOfFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("index-of", len(args), 2)
	}
	if err := wantList("index-of", args[0]); err != nil {
		return value.Empty, err
	}
	for i, item := range args[0].Lst.Items {
		if item.Equal(args[1]) {
			return value.Int(int64(i)), nil
		}
	}
	return value.Int(-1), nil
}

func joinFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return value.Empty, argErrorf("join", "expects 1 or 2 arguments, got %d", len(args))
	}
	if err := wantList("join", args[0]); err != nil {
		return value.Empty, err
	}
	sep := ""
	if len(args) == 2 {
		sep = args[1].ToString()
	}
	parts := make([]string, args[0].Lst.Len())
	for i, item := range args[0].Lst.Items {
		parts[i] = item.ToString()
	}
	return value.Str(strings.Join(parts, sep)), nil
}

// lessValue orders two Values: numerically if both are numeric,
// lexically by ToString otherwise.
func lessValue(a, b value.Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return a.ToFloat() < b.ToFloat()
	}
	return a.ToString() < b.ToString()
}

func sortFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("sort", len(args), 1)
	}
	if err := wantList("sort", args[0]); err != nil {
		return value.Empty, err
	}
	items := args[0].Lst.Items
	sort.Slice(items, func(i, j int) bool { return lessValue(items[i], items[j]) })
	return args[0], nil
}

func sortedFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("sorted", len(args), 1)
	}
	if err := wantList("sorted", args[0]); err != nil {
		return value.Empty, err
	}
	copied := append([]value.Value(nil), args[0].Lst.Items...)
	sort.Slice(copied, func(i, j int) bool { return lessValue(copied[i], copied[j]) })
	return value.ListOf(value.NewList(copied...)), nil
}

func reverseFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("reverse", len(args), 1)
	}
	if err := wantList("reverse", args[0]); err != nil {
		return value.Empty, err
	}
	src := args[0].Lst.Items
	out := make([]value.Value, len(src))
	for i, v := range src {
		out[len(src)-1-i] = v
	}
	return value.ListOf(value.NewList(out...)), nil
}

func keysFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("keys", len(args), 1)
	}
	if args[0].Kind != value.KindMap {
		return value.Empty, argErrorf("keys", "expects a map argument, got %s", args[0].Kind)
	}
	keys := make([]value.Value, 0, len(args[0].Mp.Entries))
	for k := range args[0].Mp.Entries {
		keys = append(keys, value.Str(k))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Str < keys[j].Str })
	return value.ListOf(value.NewList(keys...)), nil
}

func hasFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("has", len(args), 2)
	}
	switch args[0].Kind {
	case value.KindList:
		for _, item := range args[0].Lst.Items {
			if item.Equal(args[1]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	case value.KindMap:
		_, ok := args[0].Mp.Get(args[1].ToString())
		return value.Bool(ok), nil
	default:
		return value.Empty, argErrorf("has", "expects a list or map argument, got %s", args[0].Kind)
	}
}
