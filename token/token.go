// Package token defines the lexical tokens produced by the lexer and a
// lazy, lookahead-capable reader over a stream of them.
//
// File : rant/token/token.go
package token

import "fmt"

// Type identifies the lexical class of a Token. It is a string so that
// tokens print legibly in diagnostics and tests without a lookup table.
type Type string

const (
	// Special
	EOF     Type = "EOF"
	INVALID Type = "INVALID"
	// UnterminatedString marks a string literal that ran off the end of
	// the source without a closing delimiter; the lexer surfaces this as
	// a distinguished token rather than panicking so the parser can turn
	// it into an UnclosedStringLiteral diagnostic.
	UnterminatedString Type = "UNTERMINATED_STRING"

	// Fragment is a maximal run of printable, non-special characters —
	// literal text to be emitted verbatim at runtime.
	Fragment Type = "FRAGMENT"
	// Whitespace is a maximal run of space/tab/newline characters.
	Whitespace Type = "WHITESPACE"
	// Escape is a single escaped unit (\n, \xNN, \uNNNN, literal-char).
	Escape Type = "ESCAPE"
	// String is a verbatim, single-quoted, doubled-quote-escaped literal.
	String Type = "STRING"
	// Integer and Float are numeric literals.
	Integer Type = "INTEGER"
	Float   Type = "FLOAT"

	// Identifiers / keywords
	Ident Type = "IDENT"
	True  Type = "true"
	False Type = "false"
	Empty Type = "empty"

	// Punctuation — meaning is mode-dependent, see parser.Mode.
	LBrace   Type = "{"
	RBrace   Type = "}"
	LBracket Type = "["
	RBracket Type = "]"
	LParen   Type = "("
	RParen   Type = ")"
	LAngle   Type = "<"
	RAngle   Type = ">"
	Colon    Type = ":"
	Semi     Type = ";"
	Pipe     Type = "|"
	Star     Type = "*"
	Plus     Type = "+"
	Question Type = "?"
	Bang     Type = "!"
	Slash    Type = "/"
	Caret    Type = "^"
	Dollar   Type = "$"
	At       Type = "@"
	Equals   Type = "="
	Amp      Type = "&"
)

// Token is a single lexical unit with its source span, used both for
// parsing decisions and diagnostic positions.
type Token struct {
	Type    Type
	Literal string // raw or decoded text, depending on Type
	Line    int    // 1-indexed
	Column  int    // 1-indexed
	Start   int    // byte offset, inclusive
	End     int    // byte offset, exclusive
}

// String renders a token for diagnostics and test failure messages.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Literal, t.Line, t.Column)
}

// Is reports whether the token has the given type.
func (t Token) Is(ty Type) bool { return t.Type == ty }
