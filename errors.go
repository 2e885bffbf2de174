package rant

import (
	"fmt"
	"strings"

	"github.com/textgen/rant/diag"
	"github.com/textgen/rant/vm"
)

// File : rant/errors.go
//
// The two error taxonomies spec §7 distinguishes, re-exported at the
// public surface: CompileError wraps the parser's diag.Reporter
// (compile-time, soft-or-hard problems accumulated together);
// RuntimeError is a type alias for vm.RuntimeError (runtime, typed,
// carries an optional rendered stack trace) so callers never need to
// import the vm package directly to type-switch on it.

// RuntimeError and the ErrorKind catalogue are spec §7's runtime error
// taxonomy, implemented in vm (the package that actually raises them)
// and aliased here for the public surface.
type (
	RuntimeError = vm.RuntimeError
	ErrorKind    = vm.ErrorKind
)

const (
	StackOverflow     = vm.StackOverflow
	StackUnderflow    = vm.StackUnderflow
	InvalidAccess     = vm.InvalidAccess
	ArgumentMismatch  = vm.ArgumentMismatch
	CannotInvokeValue = vm.CannotInvokeValue
	IndexError        = vm.IndexError
	KeyError          = vm.KeyError
	SelectorErrorKind = vm.SelectorErrorKind
	UserError         = vm.UserError
)

// CompileError is returned by Compile when the source has one or more
// problems of severity >= Error (spec §6 "compile(source) -> Program |
// Diagnostics"; spec §7 "a program compiles successfully only if no
// problem of severity >= Error is present").
type CompileError struct {
	Problems []diag.Problem
}

func (e *CompileError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	return fmt.Sprintf("compile failed with %d problem(s):\n%s", len(e.Problems), strings.Join(lines, "\n"))
}
