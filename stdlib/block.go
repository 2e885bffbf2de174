package stdlib

// File : rant/stdlib/block.go
//
// Block-attribute and attribute-frame-stack natives (spec §4.4;
// original_source/src/stdlib.rs's "Block attribute / control flow
// functions" and "Attribute frame stack functions" groups, `step`/
// `step-index`/`step-count` from "Block state functions"). Every
// attribute native mutates rt.Resolver()'s pending frame directly
// (value.Runtime.Resolver(), added specifically so natives don't need
// a dozen one-off passthrough methods) — it takes effect the next time
// a block is pushed (resolver.Resolver.PushBlock consumes and replaces
// the pending frame).
//
// `mksel` (a reusable, named Selector value the original could bind to
// a variable and share across blocks) has no home in this Value set:
// spec §3 enumerates Integer/Float/Boolean/String/List/Map/Function/
// Empty and a Selector is none of those. Dropped; `sel` still creates
// an equivalent one-shot selector scoped to the very next block.

import (
	"github.com/textgen/rant/resolver"
	"github.com/textgen/rant/value"
)

var blockDefs = []Def{
	{Name: "rep", Params: []value.Param{req("count")}, Fn: repFn},
	{Name: "sep", Params: []value.Param{req("separator")}, Fn: sepFn},
	{Name: "sel", Params: []value.Param{req("mode")}, Fn: selFn},
	{Name: "if", Params: []value.Param{req("cond")}, Fn: ifFn},
	{Name: "else-if", Params: []value.Param{req("cond")}, Fn: elseIfFn},
	{Name: "else", Params: nil, Fn: elseFn},

	{Name: "push-attrs", Params: nil, Fn: pushAttrsFn},
	{Name: "pop-attrs", Params: nil, Fn: popAttrsFn},
	{Name: "count-attrs", Params: nil, Fn: countAttrsFn},
	{Name: "reset-attrs", Params: nil, Fn: resetAttrsFn},

	{Name: "step", Params: nil, Fn: stepFn},
	{Name: "step-index", Params: nil, Fn: stepIndexFn},
	{Name: "step-count", Params: nil, Fn: stepCountFn},
}

// repFn sets the pending block's repetition count: an integer, or the
// keywords "forever"/"all" (spec §4.4 "reps").
func repFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("rep", len(args), 1)
	}
	attrs := rt.Resolver().Attrs()
	switch args[0].Kind {
	case value.KindInteger:
		attrs.Reps = resolver.RepsN(int(args[0].Int))
	case value.KindString:
		switch args[0].Str {
		case "forever":
			attrs.Reps = resolver.RepsForever
		case "all":
			attrs.Reps = resolver.RepsAll
		default:
			return value.Empty, argErrorf("rep", "unknown rep keyword %q", args[0].Str)
		}
	default:
		return value.Empty, argErrorf("rep", "expects an integer or keyword, got %s", args[0].Kind)
	}
	return value.Empty, nil
}

// sepFn sets the pending block's separator value, printed between
// consecutive elements (spec §4.4 "separator").
func sepFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("sep", len(args), 1)
	}
	rt.Resolver().Attrs().Separator = args[0]
	return value.Empty, nil
}

// selFn sets the pending block's selector mode by name (spec §4.4
// "Selector modes"; names grounded on resolver.ParseSelectorMode).
func selFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.KindString {
		return value.Empty, argErrorf("sel", "expects a selector-mode string argument")
	}
	mode, ok := resolver.ParseSelectorMode(args[0].Str)
	if !ok {
		return value.Empty, argErrorf("sel", "unknown selector mode %q", args[0].Str)
	}
	rt.Resolver().Attrs().Selector = resolver.NewSelector(mode)
	return value.Empty, nil
}

func ifFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("if", len(args), 1)
	}
	rt.Resolver().Attrs().MakeIf(args[0].Truthy())
	return value.Empty, nil
}

func elseIfFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("else-if", len(args), 1)
	}
	rt.Resolver().Attrs().MakeElseIf(args[0].Truthy())
	return value.Empty, nil
}

func elseFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	rt.Resolver().Attrs().MakeElse()
	return value.Empty, nil
}

func pushAttrsFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	rt.Resolver().PushAttrs()
	return value.Empty, nil
}

func popAttrsFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	rt.Resolver().PopAttrs()
	return value.Empty, nil
}

func countAttrsFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.Int(int64(rt.Resolver().CountAttrs())), nil
}

func resetAttrsFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	rt.Resolver().ResetAttrs()
	return value.Empty, nil
}

func stepFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	b := rt.Resolver().ActiveBlock()
	if b == nil {
		return value.Empty, argErrorf("step", "not inside a block")
	}
	return value.Int(int64(b.Step())), nil
}

func stepIndexFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	b := rt.Resolver().ActiveBlock()
	if b == nil {
		return value.Empty, argErrorf("step-index", "not inside a block")
	}
	return value.Int(int64(b.StepIndex())), nil
}

func stepCountFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	b := rt.Resolver().ActiveBlock()
	if b == nil {
		return value.Empty, argErrorf("step-count", "not inside a block")
	}
	return value.Int(int64(b.StepCount())), nil
}
