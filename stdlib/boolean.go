package stdlib

// File : rant/stdlib/boolean.go
//
// `and`, `or`, `not`, `xor` — ported directly from
// original_source/src/stdlib/boolean.rs, which already pins down the
// exact arity and short-circuit-free semantics (`and`/`or` take a
// required lhs/rhs plus a variadic tail, both folded with the same
// operator rather than short-circuited, since natives here receive
// already-evaluated arguments).

import "github.com/textgen/rant/value"

var booleanDefs = []Def{
	{Name: "and", Params: []value.Param{req("lhs"), req("rhs"), star("extra")}, Fn: andFn},
	{Name: "or", Params: []value.Param{req("lhs"), req("rhs"), star("extra")}, Fn: orFn},
	{Name: "not", Params: []value.Param{req("val")}, Fn: notFn},
	{Name: "xor", Params: []value.Param{req("lhs"), req("rhs")}, Fn: xorFn},
}

func andFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Empty, wantAtLeast("and", len(args), 2)
	}
	result := args[0].Truthy() && args[1].Truthy()
	for _, a := range args[2:] {
		result = result && a.Truthy()
	}
	return value.Bool(result), nil
}

func orFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Empty, wantAtLeast("or", len(args), 2)
	}
	result := args[0].Truthy() || args[1].Truthy()
	for _, a := range args[2:] {
		result = result || a.Truthy()
	}
	return value.Bool(result), nil
}

func notFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("not", len(args), 1)
	}
	return value.Bool(!args[0].Truthy()), nil
}

func xorFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("xor", len(args), 2)
	}
	return value.Bool(args[0].Truthy() != args[1].Truthy()), nil
}
