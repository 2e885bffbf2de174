package stdlib

// File : rant/stdlib/verify.go
//
// Type-predicate natives — named per original_source/src/stdlib.rs's
// "Verification functions" group (is-string, is-integer, is-float,
// is-number, is-bool, is-empty, is). `is` takes a type-name string and
// checks it generically, matching the original's single catch-all
// alongside the per-type shorthands.

import "github.com/textgen/rant/value"

var verifyDefs = []Def{
	{Name: "is-string", Params: []value.Param{req("val")}, Fn: kindCheck(value.KindString)},
	{Name: "is-integer", Params: []value.Param{req("val")}, Fn: kindCheck(value.KindInteger)},
	{Name: "is-float", Params: []value.Param{req("val")}, Fn: kindCheck(value.KindFloat)},
	{Name: "is-bool", Params: []value.Param{req("val")}, Fn: kindCheck(value.KindBoolean)},
	{Name: "is-empty", Params: []value.Param{req("val")}, Fn: kindCheck(value.KindEmpty)},
	{Name: "is-number", Params: []value.Param{req("val")}, Fn: isNumberFn},
	{Name: "is", Params: []value.Param{req("val"), req("typeName")}, Fn: isFn},
}

func kindCheck(k value.Kind) value.NativeFunc {
	return func(rt value.Runtime, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.Empty, wantArgs("is-"+string(k), len(args), 1)
		}
		return value.Bool(args[0].Kind == k), nil
	}
}

func isNumberFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("is-number", len(args), 1)
	}
	return value.Bool(args[0].IsNumeric()), nil
}

func isFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("is", len(args), 2)
	}
	if args[1].Kind != value.KindString {
		return value.Empty, argErrorf("is", "second argument must be a type-name string")
	}
	return value.Bool(string(args[0].Kind) == args[1].Str), nil
}
