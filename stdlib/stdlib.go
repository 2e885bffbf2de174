// Package stdlib implements the native function contract and a
// grounded subset of the standard library a compiled program links
// against (spec §6 "RegisterNativeFunction", §9 stdlib natives).
//
// File : rant/stdlib/stdlib.go
//
// Grounded on the teacher's std/builtins.go: a Builtin{Name, Callback}
// registry appended to during package init, re-typed onto value.Value
// and value.NativeFunc instead of the teacher's GoMixObject/
// CallbackFunc pair. The native name catalogue itself (rep/sep/sel/
// if/else-if/else/break/continue/return/push-attrs/..., and/or/not/
// xor, eq/neq/gt/lt/ge/le, the math and conversion sets, error,
// require) is grounded on original_source/src/stdlib.rs's load_funcs!
// registration list rather than invented, since that file is the
// exact native-name surface the spec's natives were distilled from.
package stdlib

import "github.com/textgen/rant/value"

// Def describes one native binding: its exported name, declared
// parameter list, and implementation. vm/call.go does not check a
// native's argument count against Params; each implementation checks
// its own.
type Def struct {
	Name   string
	Params []value.Param
	Fn     value.NativeFunc
}

// toFunction builds the value.Function a Def registers as.
func (d Def) toFunction() *value.Function {
	return &value.Function{
		Name:          d.Name,
		Params:        d.Params,
		MinArgCount:   requiredCount(d.Params),
		VariadicStart: variadicStart(d.Params),
		Native:        d.Fn,
	}
}

func requiredCount(params []value.Param) int {
	n := 0
	for _, p := range params {
		if p.Varity == value.Required {
			n++
		}
	}
	return n
}

func variadicStart(params []value.Param) int {
	for i, p := range params {
		if p.Varity == value.VariadicStar || p.Varity == value.VariadicPlus {
			return i
		}
	}
	return len(params)
}

// Options mirrors spec §6's engine options that affect which natives
// get linked in (currently just EnableRequire; seed/debug/program name
// live on the engine itself, not stdlib).
type Options struct {
	EnableRequire bool
	Loader        SourceLoader
}

// Register installs every grounded native (plus `require`, if enabled)
// into globals, the same shape as the teacher's `init()`-time
// `Builtins = append(Builtins, ...)` but invoked explicitly by the
// engine at Engine construction time instead of via package init, so
// that require's SourceLoader can be threaded in per-Engine rather
// than shared as a package-level global.
func Register(globals map[string]value.Value, opts Options) {
	all := make([]Def, 0, 64)
	all = append(all, controlDefs...)
	all = append(all, blockDefs...)
	all = append(all, booleanDefs...)
	all = append(all, compareDefs...)
	all = append(all, mathDefs...)
	all = append(all, convertDefs...)
	all = append(all, verifyDefs...)
	all = append(all, generalDefs...)
	all = append(all, collectionDefs...)
	all = append(all, stringDefs...)
	all = append(all, errorDefs...)

	for _, d := range all {
		globals[d.Name] = value.Func(d.toFunction())
	}

	if opts.EnableRequire && opts.Loader != nil {
		globals[requireDef(opts.Loader).Name] = value.Func(requireDef(opts.Loader).toFunction())
	}
}

func req(name string) value.Param   { return value.Param{Name: name, Varity: value.Required} }
func opt(name string) value.Param   { return value.Param{Name: name, Varity: value.Optional} }
func star(name string) value.Param  { return value.Param{Name: name, Varity: value.VariadicStar} }
func plus(name string) value.Param  { return value.Param{Name: name, Varity: value.VariadicPlus} }
