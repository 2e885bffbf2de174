package stdlib

// File : rant/stdlib/strings.go
//
// String natives — named per original_source/src/stdlib.rs's "String
// functions" group (lower, upper, seg, split, lines, indent), bodies
// adapted from the teacher's std/strings.go one-native-per-Go-stdlib-
// call style onto value.Value's ToString.

import (
	"strings"

	"github.com/textgen/rant/value"
)

var stringDefs = []Def{
	{Name: "lower", Params: []value.Param{req("val")}, Fn: lowerFn},
	{Name: "upper", Params: []value.Param{req("val")}, Fn: upperFn},
	{Name: "seg", Params: []value.Param{req("val")}, Fn: segFn},
	{Name: "split", Params: []value.Param{req("val"), opt("sep")}, Fn: splitFn},
	{Name: "lines", Params: []value.Param{req("val")}, Fn: linesFn},
	{Name: "indent", Params: []value.Param{req("val"), opt("prefix")}, Fn: indentFn},
}

func lowerFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("lower", len(args), 1)
	}
	return value.Str(strings.ToLower(args[0].ToString())), nil
}

func upperFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("upper", len(args), 1)
	}
	return value.Str(strings.ToUpper(args[0].ToString())), nil
}

// segFn splits a string into a list of single-character segments (spec
// §3 "String" is a sequence of Unicode scalar values — split by rune,
// not byte, so multi-byte characters stay intact).
func segFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("seg", len(args), 1)
	}
	runes := []rune(args[0].ToString())
	items := make([]value.Value, len(runes))
	for i, r := range runes {
		items[i] = value.Str(string(r))
	}
	return value.ListOf(value.NewList(items...)), nil
}

func splitFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return value.Empty, argErrorf("split", "expects 1 or 2 arguments, got %d", len(args))
	}
	sep := ""
	if len(args) == 2 {
		sep = args[1].ToString()
	}
	var parts []string
	if sep == "" {
		parts = strings.Fields(args[0].ToString())
	} else {
		parts = strings.Split(args[0].ToString(), sep)
	}
	items := make([]value.Value, len(parts))
	for i, p := range parts {
		items[i] = value.Str(p)
	}
	return value.ListOf(value.NewList(items...)), nil
}

func linesFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("lines", len(args), 1)
	}
	lines := strings.Split(args[0].ToString(), "\n")
	items := make([]value.Value, len(lines))
	for i, l := range lines {
		items[i] = value.Str(strings.TrimSuffix(l, "\r"))
	}
	return value.ListOf(value.NewList(items...)), nil
}

func indentFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return value.Empty, argErrorf("indent", "expects 1 or 2 arguments, got %d", len(args))
	}
	prefix := "  "
	if len(args) == 2 {
		prefix = args[1].ToString()
	}
	lines := strings.Split(args[0].ToString(), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return value.Str(strings.Join(lines, "\n")), nil
}
