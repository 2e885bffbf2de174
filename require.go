package rant

import "os"

// File : rant/require.go
//
// FileLoader is the out-of-scope filesystem collaborator spec §1 names
// ("filesystem loading of source... external collaborators"), kept
// behind an interface exactly as the teacher keeps OS resources behind
// file.FileObject rather than calling os.ReadFile inline everywhere.
// Engine implements stdlib.SourceLoader by reading through FileLoader,
// compiling, and re-entering itself — `require` therefore sees the
// same globals and continues the same RNG stream as the requiring
// program (spec §8 determinism: one seeded stream per Engine, not per
// Program).
type FileLoader interface {
	ReadSource(name string) (string, error)
}

// osFileLoader is the default FileLoader, used when WithRequire is
// passed a nil loader.
type osFileLoader struct{}

func (osFileLoader) ReadSource(name string) (string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Require implements stdlib.SourceLoader: load, compile, and run name
// as a sub-program sharing this Engine's globals and RNG stream,
// returning its rendered output (SPEC_FULL.md §5 "require ... compiles
// and runs another source file ... and splices its output in place").
func (e *Engine) Require(name string) (string, error) {
	src, err := e.opts.FileLoader.ReadSource(name)
	if err != nil {
		return "", err
	}
	prog, err := e.compileNamed(src, name)
	if err != nil {
		return "", err
	}
	return e.Run(prog)
}
