package stdlib

// File : rant/stdlib/general.go
//
// `len`, `type`, `call`, `either`, `alt` — general-purpose natives from
// original_source/src/stdlib.rs's "General functions" group. `len`'s
// per-kind dispatch is grounded on the teacher's std/common.go `length`
// builtin, narrowed to this Value set's four container/sequence kinds.
// `seed` (reseeding the engine's RNG mid-run) has no home here: the
// engine's RNG is an injected `func() uint64` stream (spec §1/§6), not
// a reseedable generator, and value.Runtime exposes only RandUint64—
// adding a reseed hook would mean every native's Runtime handle could
// silently break the determinism law (spec §8 "run(program, seed) is a
// pure function"), so it is dropped rather than wired around that
// guarantee.

import "github.com/textgen/rant/value"

var generalDefs = []Def{
	{Name: "len", Params: []value.Param{req("val")}, Fn: lenFn},
	{Name: "type", Params: []value.Param{req("val")}, Fn: typeFn},
	{Name: "call", Params: []value.Param{req("fn"), star("args")}, Fn: callFn},
	{Name: "either", Params: []value.Param{req("a"), req("b")}, Fn: eitherFn},
	{Name: "alt", Params: []value.Param{req("first"), plus("rest")}, Fn: altFn},
}

func lenFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("len", len(args), 1)
	}
	switch args[0].Kind {
	case value.KindString:
		return value.Int(int64(len(args[0].Str))), nil
	case value.KindList:
		return value.Int(int64(args[0].Lst.Len())), nil
	case value.KindMap:
		return value.Int(int64(len(args[0].Mp.Entries))), nil
	case value.KindEmpty:
		return value.Int(0), nil
	default:
		return value.Empty, argErrorf("len", "unsupported argument kind %s", args[0].Kind)
	}
}

func typeFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("type", len(args), 1)
	}
	return value.Str(string(args[0].Kind)), nil
}

// callFn invokes a Function value with the remaining arguments — a
// dynamic-dispatch escape hatch for values obtained as data (e.g. a
// function passed through a list) rather than referenced by name.
func callFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Empty, wantAtLeast("call", len(args), 1)
	}
	if !args[0].IsFunction() {
		return value.Empty, argErrorf("call", "first argument must be a function")
	}
	return rt.Invoke(args[0], args[1:])
}

func eitherFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("either", len(args), 2)
	}
	if rt.RandUint64()%2 == 0 {
		return args[0], nil
	}
	return args[1], nil
}

// altFn picks uniformly among one-or-more candidates (spec §4.4's
// selection model generalised to an expression-level native rather
// than a block).
func altFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Empty, wantAtLeast("alt", len(args), 1)
	}
	idx := int(rt.RandUint64() % uint64(len(args)))
	return args[idx], nil
}
