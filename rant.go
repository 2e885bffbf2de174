// Package rant implements the public library surface of a small
// procedural text-generation language: compile source into a Program,
// run a Program against a seeded RNG and a shared global scope, and
// register native functions callable from it (spec §6).
//
// File : rant/rant.go
//
// Grounded on the teacher's top-level package shape (go-mix exposes no
// single entry point; main/main.go directly wires lexer+parser+eval
// together). This package collapses that wiring into one constructor
// (`New`) and two operations (`Compile`, `Run`) per spec §6's "Engine:
// owns globals, options, seeded RNG" — the library surface spec.md
// explicitly wants instead of a CLI.
package rant

import (
	"github.com/textgen/rant/value"
)

// Re-exported Value constructors (spec §6 "Value constructors for each
// variant"), so callers building arguments for RegisterNativeFunction
// or seeding globals never need to import the value package directly.
var (
	Int    = value.Int
	Float  = value.Float
	Bool   = value.Bool
	Str    = value.Str
	ListOf = value.ListOf
	MapOf  = value.MapOf
	Func   = value.Func

	NewList = value.NewList
	NewMap  = value.NewMap
)

// Empty is the single Empty value (spec §3).
var Empty = value.Empty

// Value, List, Map, Function, Param, and Varity are re-exported so
// native-function callbacks registered through RegisterNativeFunction
// can be written entirely in terms of this package.
type (
	Value    = value.Value
	List     = value.List
	Map      = value.Map
	Function = value.Function
	Param    = value.Param
	Varity   = value.Varity
)

const (
	Required     = value.Required
	Optional     = value.Optional
	VariadicStar = value.VariadicStar
	VariadicPlus = value.VariadicPlus
)

// NativeFunc is the callback signature RegisterNativeFunction expects
// (spec §6 "callback receives a VM handle and decoded arguments").
type NativeFunc = value.NativeFunc

// Runtime is the handle a NativeFunc receives.
type Runtime = value.Runtime
