// Package parser implements the hand-written, mode-parameterised
// recursive-descent parser and the syntax-tree (ST) types it produces.
//
// File : rant/parser/parser.go
package parser

import (
	"strconv"
	"strings"

	"github.com/textgen/rant/diag"
	"github.com/textgen/rant/lexer"
	"github.com/textgen/rant/token"
)

// Parser turns a token stream into a Sequence, accumulating diagnostics
// rather than failing at the first problem (spec §4.2 "soft vs hard
// errors"). Grounded on the teacher's Parser (lexer + tokens + Errors
// []string), generalised with the mode parameter and the two auxiliary
// stacks described in capture.go.
type Parser struct {
	lx      *lexer.Lexer
	cur     token.Token
	peekBuf *token.Token
	origin  string
	debug   bool
	diag    *diag.Reporter

	scopeStack   []map[string]bool
	captureStack []*captureFrame
}

// New creates a Parser over src. origin is copied onto every Sequence
// it produces (spec §3, used in stack traces); debug controls whether
// DebugCursorNode markers are emitted (spec §6).
func New(src, origin string, debug bool) *Parser {
	p := &Parser{
		lx:     lexer.New(src),
		origin: origin,
		debug:  debug,
		diag:   &diag.Reporter{},
	}
	p.pushScope() // program-level scope, never popped
	p.advance()
	return p
}

// Diagnostics returns every problem collected during the parse.
func (p *Parser) Diagnostics() *diag.Reporter { return p.diag }

// Parse runs the parser to completion and returns the top-level
// Sequence. The caller must check p.Diagnostics().HasErrors() before
// treating the result as compilable — a hard error aborts early and the
// returned Sequence may be partial.
func (p *Parser) Parse() *Sequence {
	seq, _, _ := p.parseSequence(ModeTopLevel)
	return seq
}

func (p *Parser) advance() {
	if p.peekBuf != nil {
		p.cur = *p.peekBuf
		p.peekBuf = nil
		return
	}
	p.cur = p.lx.NextToken()
}

// peekNext returns the token after p.cur without consuming it, buffering
// at most one token of extra lookahead — needed only to tell whether a
// '*' is the defer-block sugar (followed by '{') or plain text.
func (p *Parser) peekNext() token.Token {
	if p.peekBuf == nil {
		t := p.lx.NextToken()
		p.peekBuf = &t
	}
	return *p.peekBuf
}

func (p *Parser) peekIsBlockStart() bool {
	return p.peekNext().Type == token.LBrace
}

func (p *Parser) pos() Pos {
	if !p.debug {
		return Pos{}
	}
	return Pos{Line: p.cur.Line, Column: p.cur.Column, Start: p.cur.Start, End: p.cur.End}
}

func (p *Parser) posAt(tok token.Token) Pos {
	if !p.debug {
		return Pos{}
	}
	return Pos{Line: tok.Line, Column: tok.Column, Start: tok.Start, End: tok.End}
}

func (p *Parser) report(kind diag.Kind, severity diag.Severity, msg string, tok token.Token) {
	p.diag.Report(diag.Problem{
		Kind:     kind,
		Severity: severity,
		Message:  msg,
		Pos: diag.Position{
			Line: tok.Line, Column: tok.Column, Start: tok.Start, End: tok.End,
		},
	})
}

func (p *Parser) softError(kind diag.Kind, msg string) {
	p.report(kind, diag.SeverityError, msg, p.cur)
}

// expect consumes the current token if it has type ty; otherwise it
// records an ExpectedToken diagnostic and leaves the stream unchanged so
// the caller can attempt to resynchronise.
func (p *Parser) expect(ty token.Type) bool {
	if p.cur.Type == ty {
		p.advance()
		return true
	}
	p.softError(diag.ExpectedToken, "expected "+string(ty)+", found "+p.cur.String())
	return false
}

// parseIdentifier consumes a single Fragment token and validates it as
// an identifier: letters, digits, underscore, and hyphen, not starting
// with a digit. Grounded on the original's parse_ident charset check.
func (p *Parser) parseIdentifier() (string, bool) {
	if p.cur.Type != token.Fragment {
		p.softError(diag.MissingIdentifier, "expected identifier, found "+p.cur.String())
		return "", false
	}
	name := p.cur.Literal
	if !isValidIdentifier(name) {
		p.softError(diag.InvalidIdentifier, "invalid identifier: "+name)
		p.advance()
		return name, false
	}
	p.advance()
	return name, true
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// parseSequence parses one Sequence under mode and returns it along with
// the reason parsing stopped and whether the sequence contains at least
// one printing element (spec §4.2 hint propagation).
func (p *Parser) parseSequence(mode Mode) (*Sequence, EndReason, bool) {
	seq := &Sequence{Origin: p.origin}
	var nextFlag PrintFlag
	var pendingWS *WhitespaceNode
	isPrinting := false

	flush := func() {
		if pendingWS != nil {
			seq.Nodes = append(seq.Nodes, pendingWS)
			pendingWS = nil
		}
	}
	discardPendingWS := func() { pendingWS = nil }

	push := func(n Node) {
		if p.debug {
			seq.Nodes = append(seq.Nodes, &DebugCursorNode{P: p.pos()})
		}
		seq.Nodes = append(seq.Nodes, n)
	}

	// noFlagsAllowed rejects a pending Hint/Sink flag on constructs that
	// can't carry one (fragments, whitespace, literals, accessors sans
	// print semantics, etc.)
	noFlagsAllowed := func(displayName string) {
		switch nextFlag {
		case PrintHint:
			p.softError(diag.InvalidHintOn, "hint not valid on "+displayName)
		case PrintSink:
			p.softError(diag.InvalidSinkOn, "sink not valid on "+displayName)
		}
	}

	for {
		switch p.cur.Type {
		case token.EOF:
			if mode != ModeTopLevel {
				p.softError(unclosedKindFor(mode), "unexpected end of input while parsing "+mode.String())
			}
			flush()
			return seq, EndProgram, isPrinting

		case token.Whitespace:
			pendingWS = &WhitespaceNode{Text: p.cur.Literal, P: p.pos()}
			p.advance()
			continue

		case token.Fragment, token.Escape:
			noFlagsAllowed("text")
			var sb strings.Builder
			start := p.cur
			for p.cur.Type == token.Fragment || p.cur.Type == token.Escape {
				sb.WriteString(p.cur.Literal)
				p.advance()
			}
			flush()
			push(&TextFragmentNode{Text: sb.String(), P: p.posAt(start)})
			isPrinting = true
			nextFlag = PrintNone
			if mode == ModeSingleItem {
				return seq, EndSingleItem, isPrinting
			}
			continue

		case token.True, token.False, token.Empty, token.Integer, token.Float, token.String:
			noFlagsAllowed("literal")
			flush()
			push(p.parseLiteral())
			isPrinting = true
			nextFlag = PrintNone
			if mode == ModeSingleItem {
				return seq, EndSingleItem, isPrinting
			}
			continue

		case token.RAngle:
			switch mode {
			case ModeVariableAssignment:
				flush()
				return seq, EndVarAssignEnd, isPrinting
			case ModeAccessorFallback:
				flush()
				return seq, EndAccessorFallbackEnd, isPrinting
			default:
				// '<' always opens an accessor, so a bare '>' reaching
				// plain sequence parsing can only be the Hint sigil.
				noFlagsAllowed("hint sigil")
				flush()
				isPrinting = true
				nextFlag = PrintHint
				p.advance()
				continue
			}

		case token.Bang:
			if t := p.peekNext().Type; t == token.LBrace || t == token.LAngle || t == token.LBracket || t == token.Star {
				noFlagsAllowed("sink sigil")
				discardPendingWS()
				nextFlag = PrintSink
				p.advance()
				continue
			}
			// A '!' that marks no following construct is ordinary text.
			flush()
			push(&TextFragmentNode{Text: "!", P: p.pos()})
			isPrinting = true
			p.advance()

		case token.Star:
			// A block immediately following '*' is parsed the same as a
			// plain block (spec doesn't distinguish value-blocks from
			// printing-blocks at the ST level here); elsewhere '*' is
			// ordinary text.
			if p.peekIsBlockStart() {
				p.advance()
				continue
			}
			flush()
			push(&TextFragmentNode{Text: "*", P: p.pos()})
			isPrinting = true
			p.advance()
			if mode == ModeSingleItem {
				return seq, EndSingleItem, isPrinting
			}
			continue

		case token.LBrace:
			block := p.parseBlock(nextFlag)
			p.applyBlockFlag(nextFlag, block, &pendingWS, &isPrinting)
			flush()
			push(block)
			nextFlag = PrintNone
			if mode == ModeSingleItem {
				return seq, EndSingleItem, isPrinting
			}
			continue

		case token.LAngle:
			nodes := p.parseAccessorBracket(nextFlag)
			flush()
			for _, n := range nodes {
				push(n)
			}
			isPrinting = isPrinting || accessorsArePrinting(nodes, nextFlag)
			nextFlag = PrintNone
			if mode == ModeSingleItem {
				return seq, EndSingleItem, isPrinting
			}
			continue

		case token.LBracket:
			node := p.parseFunctionAccess(nextFlag)
			flush()
			push(node)
			isPrinting = true
			nextFlag = PrintNone
			if mode == ModeSingleItem {
				return seq, EndSingleItem, isPrinting
			}
			continue

		case token.LParen:
			noFlagsAllowed("list initialiser")
			flush()
			push(p.parseListInit())
			isPrinting = true
			nextFlag = PrintNone
			if mode == ModeSingleItem {
				return seq, EndSingleItem, isPrinting
			}
			continue

		case token.At:
			noFlagsAllowed("map initialiser")
			flush()
			push(p.parseMapInit())
			isPrinting = true
			nextFlag = PrintNone
			if mode == ModeSingleItem {
				return seq, EndSingleItem, isPrinting
			}
			continue

		case token.Amp:
			switch mode {
			case ModeFunctionArg:
				flush()
				return seq, EndFunctionArgToCompose, isPrinting
			case ModeAnonFunctionExpr:
				flush()
				return seq, EndAnonFuncToCompose, isPrinting
			default:
				p.unexpectedToken()
				p.advance()
				continue
			}

		case token.Pipe:
			switch mode {
			case ModeBlockElementAny:
				flush()
				return seq, EndBlockDelim, isPrinting
			default:
				p.unexpectedToken()
				p.advance()
				continue
			}

		case token.RBrace:
			switch mode {
			case ModeBlockElementAny:
				flush()
				return seq, EndBlockEnd, isPrinting
			case ModeFunctionBody:
				flush()
				return seq, EndFunctionBodyEnd, isPrinting
			case ModeDynamicKey:
				flush()
				return seq, EndDynamicKeyEnd, isPrinting
			default:
				p.unexpectedToken()
				p.advance()
				continue
			}

		case token.RBracket:
			switch mode {
			case ModeFunctionArg:
				flush()
				return seq, EndFunctionArgsEnd, isPrinting
			case ModeAnonFunctionExpr:
				flush()
				return seq, EndAnonFuncNoArgs, isPrinting
			default:
				p.unexpectedToken()
				p.advance()
				continue
			}

		case token.Colon:
			switch mode {
			case ModeAnonFunctionExpr:
				flush()
				return seq, EndAnonFuncArgsFollow, isPrinting
			default:
				flush()
				push(&TextFragmentNode{Text: ":", P: p.pos()})
				isPrinting = true
				p.advance()
			}

		case token.Semi:
			switch mode {
			case ModeFunctionArg:
				flush()
				return seq, EndFunctionArgNext, isPrinting
			case ModeCollectionInit:
				flush()
				return seq, EndCollectionNext, isPrinting
			case ModeVariableAssignment:
				flush()
				return seq, EndVarAssignNext, isPrinting
			case ModeAccessorFallback:
				flush()
				return seq, EndAccessorFallbackNext, isPrinting
			default:
				flush()
				push(&TextFragmentNode{Text: ";", P: p.pos()})
				isPrinting = true
				p.advance()
			}

		case token.RParen:
			switch mode {
			case ModeCollectionInit:
				flush()
				return seq, EndCollectionEnd, isPrinting
			default:
				p.unexpectedToken()
				p.advance()
				continue
			}

		default:
			// Any other punctuation (Question, Slash, Caret,
			// Dollar, Equals) reaching plain sequence parsing outside the
			// constructs that claim it is ordinary text.
			flush()
			push(&TextFragmentNode{Text: p.cur.Literal, P: p.pos()})
			isPrinting = true
			p.advance()
		}

		if mode == ModeSingleItem {
			flush()
			return seq, EndSingleItem, isPrinting
		}
	}
}

func (p *Parser) unexpectedToken() {
	p.softError(diag.UnexpectedToken, "unexpected token "+p.cur.String())
}

func unclosedKindFor(mode Mode) diag.Kind {
	switch mode {
	case ModeBlockElementAny:
		return diag.UnclosedBlock
	case ModeFunctionArg, ModeAnonFunctionExpr:
		return diag.UnclosedFunctionSignature
	case ModeFunctionBody:
		return diag.UnclosedFunctionSignature
	case ModeDynamicKey:
		return diag.UnclosedVariableAccess
	case ModeVariableAssignment, ModeAccessorFallback:
		return diag.UnclosedVariableAccess
	case ModeCollectionInit:
		return diag.UnclosedList
	default:
		return diag.UnexpectedToken
	}
}

// parseLiteral consumes a single literal token (number, boolean, empty,
// or string) and produces the matching value node.
func (p *Parser) parseLiteral() Node {
	tok := p.cur
	defer p.advance()
	switch tok.Type {
	case token.True:
		return &BooleanNode{Value: true, P: p.posAt(tok)}
	case token.False:
		return &BooleanNode{Value: false, P: p.posAt(tok)}
	case token.Empty:
		return &EmptyNode{P: p.posAt(tok)}
	case token.Integer:
		n, _ := strconv.ParseInt(tok.Literal, 10, 64)
		return &IntegerNode{Value: n, P: p.posAt(tok)}
	case token.Float:
		f, _ := strconv.ParseFloat(tok.Literal, 64)
		return &FloatNode{Value: f, P: p.posAt(tok)}
	case token.String:
		return &TextFragmentNode{Text: tok.Literal, P: p.posAt(tok)}
	default:
		return &EmptyNode{P: p.posAt(tok)}
	}
}

// applyBlockFlag implements spec §4.2's whitespace/hint propagation
// rule for a just-parsed block: a hinted block always allows pending
// whitespace and marks the sequence printing; a sunk block discards
// pending whitespace; an unflagged block inherits Hint status from its
// own content.
func (p *Parser) applyBlockFlag(flag PrintFlag, block *BlockNode, pendingWS **WhitespaceNode, isPrinting *bool) {
	switch flag {
	case PrintHint:
		*isPrinting = true
	case PrintSink:
		*pendingWS = nil
	case PrintNone:
		if block.Flag == PrintHint {
			*isPrinting = true
		}
	}
}

func accessorsArePrinting(nodes []Node, flag PrintFlag) bool {
	if flag == PrintHint {
		return true
	}
	if flag == PrintSink {
		return false
	}
	for _, n := range nodes {
		if g, ok := n.(*VarGetNode); ok && g.Flag == PrintHint {
			return true
		}
	}
	return false
}
