// Package vm implements the runtime: a tree-walking evaluator over the
// parser's ST, a call stack with lexical scope chains (scope package),
// a resolver-driven block iteration, and the calling convention for
// user and native functions (spec §4.5).
//
// File : rant/vm/errors.go
//
// RuntimeError is the second of spec §7's two error taxonomies (the
// first, diag.Problem, is compile-time). Grounded on the teacher's
// objects.Error convention (a struct wrapping a message, exposing
// Error() string) generalised into spec §7's typed runtime-error
// catalogue with an optional rendered stack trace.
package vm

import "fmt"

// ErrorKind enumerates every runtime error spec §7 names.
type ErrorKind string

const (
	StackOverflow     ErrorKind = "StackOverflow"
	StackUnderflow    ErrorKind = "StackUnderflow"
	InvalidAccess     ErrorKind = "InvalidAccess"
	ArgumentMismatch  ErrorKind = "ArgumentMismatch"
	CannotInvokeValue ErrorKind = "CannotInvokeValue"
	IndexError        ErrorKind = "IndexError"
	KeyError          ErrorKind = "KeyError"
	SelectorErrorKind ErrorKind = "SelectorError"
	UserError         ErrorKind = "UserError"
)

// RuntimeError is returned by every VM operation that can fail at run
// time (spec §7 "Runtime errors"). StackTrace is populated by the VM
// at the point the error is about to leave Run, not at the point of
// creation (spec §4.5 "Stack-trace generation").
type RuntimeError struct {
	Kind        ErrorKind
	Description string
	StackTrace  string
}

func (e *RuntimeError) Error() string {
	if e.Description == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Description)
}

func newError(kind ErrorKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Description: fmt.Sprintf(format, args...)}
}
