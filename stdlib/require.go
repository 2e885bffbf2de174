package stdlib

// File : rant/stdlib/require.go
//
// `require` — compiles and runs another source file (or string) and
// splices its rendered output in place, re-entering the engine rather
// than the VM directly (SPEC_FULL.md §5 "Supplemented features").
// Filesystem access (and the compile/run cycle itself, which needs
// parser+vm+stdlib wired together — a job only the engine package can
// do without stdlib importing back up to it) stays behind the
// SourceLoader interface the engine injects at Register time, mirroring
// the teacher's own separation between its interpreter and its
// os.FileObject resource type.

import "github.com/textgen/rant/value"

// SourceLoader resolves a required name to its rendered output. The
// engine supplies the concrete implementation (read the file, compile
// it, run it with the same stdlib and the same RNG stream); stdlib
// only needs the result.
type SourceLoader interface {
	Require(name string) (string, error)
}

func requireDef(loader SourceLoader) Def {
	return Def{
		Name:   "require",
		Params: []value.Param{req("name")},
		Fn: func(rt value.Runtime, args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return value.Empty, wantArgs("require", len(args), 1)
			}
			out, err := loader.Require(args[0].ToString())
			if err != nil {
				return value.Empty, argErrorf("require", "%s: %s", args[0].ToString(), err.Error())
			}
			return value.Str(out), nil
		},
	}
}
