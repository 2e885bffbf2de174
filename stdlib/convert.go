package stdlib

// File : rant/stdlib/convert.go
//
// `int`, `float`, `string` — ported directly from
// original_source/src/stdlib/convert.rs (`to_int`/`to_float`/
// `to_string`, registered under the shorter external names per
// stdlib.rs's `load_funcs!` list), re-typed onto value.Value's own
// total ToInt/ToFloat/ToString conversions.

import "github.com/textgen/rant/value"

var convertDefs = []Def{
	{Name: "int", Params: []value.Param{req("value")}, Fn: toIntFn},
	{Name: "float", Params: []value.Param{req("value")}, Fn: toFloatFn},
	{Name: "string", Params: []value.Param{req("value")}, Fn: toStringFn},
}

func toIntFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("int", len(args), 1)
	}
	return value.Int(args[0].ToInt()), nil
}

func toFloatFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("float", len(args), 1)
	}
	return value.Float(args[0].ToFloat()), nil
}

func toStringFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("string", len(args), 1)
	}
	return value.Str(args[0].ToString()), nil
}
