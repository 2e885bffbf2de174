package stdlib

// File : rant/stdlib/compare.go
//
// `eq`, `neq`, `gt`, `lt`, `ge`, `le` — named per
// original_source/src/stdlib.rs's "Comparison functions" group.
// Equality uses value.Value.Equal (spec §3's total equality); ordering
// is numeric-only (spec doesn't define an ordering over strings/lists/
// maps/functions, only "conversions to int/float/string... are total",
// so `gt`/`lt`/`ge`/`le` convert both operands with ToFloat rather than
// rejecting non-numeric input outright).

import "github.com/textgen/rant/value"

var compareDefs = []Def{
	{Name: "eq", Params: []value.Param{req("lhs"), req("rhs")}, Fn: eqFn},
	{Name: "neq", Params: []value.Param{req("lhs"), req("rhs")}, Fn: neqFn},
	{Name: "gt", Params: []value.Param{req("lhs"), req("rhs")}, Fn: gtFn},
	{Name: "lt", Params: []value.Param{req("lhs"), req("rhs")}, Fn: ltFn},
	{Name: "ge", Params: []value.Param{req("lhs"), req("rhs")}, Fn: geFn},
	{Name: "le", Params: []value.Param{req("lhs"), req("rhs")}, Fn: leFn},
}

func eqFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("eq", len(args), 2)
	}
	return value.Bool(args[0].Equal(args[1])), nil
}

func neqFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("neq", len(args), 2)
	}
	return value.Bool(!args[0].Equal(args[1])), nil
}

func gtFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("gt", len(args), 2)
	}
	return value.Bool(args[0].ToFloat() > args[1].ToFloat()), nil
}

func ltFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("lt", len(args), 2)
	}
	return value.Bool(args[0].ToFloat() < args[1].ToFloat()), nil
}

func geFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("ge", len(args), 2)
	}
	return value.Bool(args[0].ToFloat() >= args[1].ToFloat()), nil
}

func leFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("le", len(args), 2)
	}
	return value.Bool(args[0].ToFloat() <= args[1].ToFloat()), nil
}
