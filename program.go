package rant

import "github.com/textgen/rant/parser"

// File : rant/program.go
//
// Program is a compiled, immutable Sequence ready to be run (spec §3
// "ST values are created by the parser and are immutable (shared)";
// spec §6 "compile(source) -> Program"). It carries no state of its
// own beyond what the parser produced, so the same Program can be run
// repeatedly (e.g. against different seeds) without recompiling.
type Program struct {
	seq    *parser.Sequence
	origin string
}

// Name is the origin string recorded on every Sequence the program
// contains (spec §3 "Sequence ... carrying an origin reference").
func (p *Program) Name() string { return p.origin }
