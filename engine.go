package rant

import (
	"math/rand/v2"

	"github.com/textgen/rant/parser"
	"github.com/textgen/rant/stdlib"
	"github.com/textgen/rant/value"
	"github.com/textgen/rant/vm"
)

// File : rant/engine.go
//
// Engine owns globals, options, and a seeded RNG (spec §6 "Engine:
// owns globals, options, seeded RNG"), grounded on the teacher's
// main/main.go wiring (construct parser, construct evaluator, drive to
// completion) collapsed into a reusable library type instead of a
// one-shot CLI flow. math/rand/v2's PCG is the RNG implementation:
// spec §1 names the RNG algorithm itself as an out-of-scope external
// collaborator ("specified only as a seeded stream of usize values"),
// and no third-party RNG crate appears anywhere in the example corpus,
// so the standard library is the only grounded choice here (see
// DESIGN.md).
type Engine struct {
	globals map[string]value.Value
	rng     *rand.Rand
	opts    Options
}

// New constructs an Engine, registering the grounded native library
// (and `require`, if WithRequire was given) into a fresh global scope
// (spec §6).
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.EnableRequire && o.FileLoader == nil {
		o.FileLoader = osFileLoader{}
	}

	e := &Engine{
		globals: map[string]value.Value{},
		rng:     rand.New(rand.NewPCG(o.Seed, o.Seed^0x9E3779B97F4A7C15)),
		opts:    o,
	}
	stdlib.Register(e.globals, stdlib.Options{
		EnableRequire: o.EnableRequire,
		Loader:        e,
	})
	return e
}

// Compile parses source and returns a reusable Program, or a
// *CompileError if any problem of severity >= Error was reported
// (spec §6 "compile(source) -> Program | Diagnostics").
func (e *Engine) Compile(source string) (*Program, error) {
	return e.compileNamed(source, e.opts.ProgramName)
}

func (e *Engine) compileNamed(source, origin string) (*Program, error) {
	p := parser.New(source, origin, e.opts.Debug)
	seq := p.Parse()
	if p.Diagnostics().HasErrors() {
		return nil, &CompileError{Problems: p.Diagnostics().Problems}
	}
	return &Program{seq: seq, origin: origin}, nil
}

// Run executes a compiled Program against this Engine's globals and
// RNG stream, returning its rendered output (spec §6 "run(Program) ->
// String | RuntimeError"). The RNG stream is never reset between runs,
// so two Run calls on the same Engine draw from the same continuing
// sequence — determinism (spec §8) is defined per-Engine-construction,
// not per-Run.
func (e *Engine) Run(p *Program) (string, error) {
	m := vm.New(e.globals, e.rng.Uint64, p.origin, e.opts.Debug)
	return m.Run(p.seq)
}

// SetGlobal writes a value into the shared global scope (spec §6
// "set_global(name, value)").
func (e *Engine) SetGlobal(name string, v value.Value) {
	e.globals[name] = v
}

// GetGlobal reads a value from the shared global scope (spec §6
// "get_global(name) -> Value?").
func (e *Engine) GetGlobal(name string) (value.Value, bool) {
	v, ok := e.globals[name]
	return v, ok
}

// RegisterNativeFunction installs a native function under name,
// callable from any program this Engine runs (spec §6
// "RegisterNativeFunction(name, params, callback)").
func (e *Engine) RegisterNativeFunction(name string, params []value.Param, fn value.NativeFunc) {
	e.globals[name] = value.Func(&value.Function{
		Name:          name,
		Params:        params,
		MinArgCount:   requiredCount(params),
		VariadicStart: variadicStart(params),
		Native:        fn,
	})
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
