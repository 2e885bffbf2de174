// Package diag defines compile-time diagnostics: problem kinds,
// severities, and source positions (spec §6 "Diagnostic output").
//
// File : rant/diag/diag.go
//
// Grounded on the teacher's accumulate-don't-panic error model
// (parser.Parser.Errors []string / HasErrors / GetErrors), generalised
// from plain strings into a typed catalogue so the CLI (out of scope,
// an external collaborator) can format each kind however it likes.
package diag

import "fmt"

// Severity distinguishes problems that still allow compilation to
// succeed from ones that don't.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Kind enumerates every compile-time problem spec §6 names.
type Kind string

const (
	UnexpectedToken           Kind = "UnexpectedToken"
	UnclosedBlock             Kind = "UnclosedBlock"
	UnclosedFunctionSignature Kind = "UnclosedFunctionSignature"
	UnclosedMap               Kind = "UnclosedMap"
	UnclosedList              Kind = "UnclosedList"
	UnclosedVariableAccess    Kind = "UnclosedVariableAccess"
	UnclosedStringLiteral     Kind = "UnclosedStringLiteral"
	InvalidHint               Kind = "InvalidHint"
	InvalidSink               Kind = "InvalidSink"
	InvalidHintOn             Kind = "InvalidHintOn"
	InvalidSinkOn             Kind = "InvalidSinkOn"
	InvalidIdentifier         Kind = "InvalidIdentifier"
	DuplicateParameter        Kind = "DuplicateParameter"
	MultipleVariadicParams    Kind = "MultipleVariadicParams"
	InvalidParamOrder         Kind = "InvalidParamOrder"
	MissingIdentifier         Kind = "MissingIdentifier"
	LocalPathStartsWithIndex  Kind = "LocalPathStartsWithIndex"
	ComposeValueReused        Kind = "ComposeValueReused"
	NothingToCompose          Kind = "NothingToCompose"
	AnonValueAssignment       Kind = "AnonValueAssignment"
	ExpectedToken             Kind = "ExpectedToken"
	FunctionBodyBlockMultiElement Kind = "FunctionBodyBlockMultiElement"
	DynamicKeyBlockMultiElement   Kind = "DynamicKeyBlockMultiElement"
)

// Position is a byte-range-plus-line/column source location. Invariant
// (spec §8): 0 <= Start <= End <= source length.
type Position struct {
	Line, Column int
	Start, End   int
}

// Problem is a single compile-time diagnostic.
type Problem struct {
	Kind     Kind
	Severity Severity
	Message  string // human-readable detail, e.g. the offending token text
	Pos      Position
}

func (p Problem) String() string {
	return fmt.Sprintf("%s at %d:%d: %s (%s)", p.Severity, p.Pos.Line, p.Pos.Column, p.Message, p.Kind)
}

// Reporter accumulates soft problems during a single parse and tracks
// whether any problem severe enough to fail compilation was seen (spec
// §4.2 "a reporter collaborator").
type Reporter struct {
	Problems []Problem
	hasError bool
}

// Report records a problem. Hard problems (see parser) are reported the
// same way; what distinguishes them is that the parser additionally
// aborts the current construct.
func (r *Reporter) Report(p Problem) {
	r.Problems = append(r.Problems, p)
	if p.Severity == SeverityError {
		r.hasError = true
	}
}

// HasErrors reports whether compilation must fail.
func (r *Reporter) HasErrors() bool { return r.hasError }
