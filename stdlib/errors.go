package stdlib

// File : rant/stdlib/errors.go
//
// The `error` native (spec §7 "UserError(description), raised by the
// error native function") plus the argument-decoding helpers every
// other native in this package uses, grounded on the teacher's
// createError (std/common.go) generalised into a typed RuntimeError
// instead of a sentinel Error value — this domain surfaces native
// failures through the same error return every other VM operation
// uses, not a boxed value.

import (
	"fmt"

	"github.com/textgen/rant/value"
)

// nativeError is the error a native returns to have the VM wrap it as
// a RuntimeError{Kind: UserError}; vm.callFunction passes it straight
// through since native errors already satisfy the error interface, and
// the engine/VM only special-case RuntimeError when rendering a stack
// trace, so a plain error still produces a sensible message.
type nativeError struct{ msg string }

func (e *nativeError) Error() string { return e.msg }

func argErrorf(name, format string, args ...interface{}) error {
	return &nativeError{msg: fmt.Sprintf("%s: %s", name, fmt.Sprintf(format, args...))}
}

func wantArgs(name string, got, want int) error {
	return argErrorf(name, "expects %d argument(s), got %d", want, got)
}

func wantAtLeast(name string, got, want int) error {
	return argErrorf(name, "expects at least %d argument(s), got %d", want, got)
}

var errorDefs = []Def{
	{Name: "error", Params: []value.Param{req("message")}, Fn: errorFn},
}

// errorFn raises a UserError with the given description (spec §7
// "UserError(description)").
func errorFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("error", len(args), 1)
	}
	return value.Empty, &nativeError{msg: args[0].ToString()}
}
