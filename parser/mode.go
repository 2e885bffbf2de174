package parser

// File : rant/parser/mode.go
//
// Mode is the sequence-parse-mode parameter threaded through every call
// to parseSequence — spec §4.2's table of modes and terminators.
// Grounded on the teacher's single-mode recursive descent (parser.Parser
// only ever parses "a program"), generalised here because this grammar's
// same punctuation means different things depending on what's being
// parsed (an argument list ends differently than a block element).
type Mode int

const (
	ModeTopLevel Mode = iota
	ModeBlockElementAny
	ModeFunctionArg
	ModeFunctionBody
	ModeDynamicKey
	ModeAnonFunctionExpr
	ModeVariableAssignment
	ModeAccessorFallback
	ModeCollectionInit
	ModeSingleItem
)

func (m Mode) String() string {
	switch m {
	case ModeTopLevel:
		return "top level"
	case ModeBlockElementAny:
		return "block element"
	case ModeFunctionArg:
		return "argument"
	case ModeFunctionBody:
		return "function body"
	case ModeDynamicKey:
		return "dynamic key"
	case ModeAnonFunctionExpr:
		return "anonymous function expression"
	case ModeVariableAssignment:
		return "variable assignment"
	case ModeAccessorFallback:
		return "accessor fallback"
	case ModeCollectionInit:
		return "collection initialiser"
	case ModeSingleItem:
		return "item"
	}
	return "sequence"
}

// EndReason tags why parseSequence stopped, mirroring the teacher's
// practice of returning an explicit, named outcome rather than leaving
// callers to re-inspect the last token.
type EndReason int

const (
	EndProgram EndReason = iota
	EndBlockDelim
	EndBlockEnd
	EndFunctionArgNext
	EndFunctionArgsEnd
	EndFunctionArgToCompose
	EndFunctionBodyEnd
	EndDynamicKeyEnd
	EndAnonFuncArgsFollow
	EndAnonFuncNoArgs
	EndAnonFuncToCompose
	EndVarAssignEnd
	EndVarAssignNext
	EndAccessorFallbackEnd
	EndAccessorFallbackNext
	EndCollectionNext
	EndCollectionEnd
	EndSingleItem
)
