package parser

// File : rant/parser/funccall.go
//
// The `[...]` function-access construct (spec §3 "Function", §4.2):
// named definitions (`$`), closures (`?`), anonymous-callee calls
// (`!`), plain named calls, parameter lists, argument lists, and `&`
// composition chaining. Concrete sigil choices ($ define, ? closure, !
// anonymous callee) are a parser-level design decision recorded in
// DESIGN.md — the filtered original source doesn't retain its lexer, so
// the exact characters Rant itself used aren't recoverable from the
// corpus; what matters structurally (signature in brackets, body in a
// following brace block, compose chaining through `&`) follows spec §4.2's
// mode table directly.

import (
	"github.com/textgen/rant/diag"
	"github.com/textgen/rant/token"
)

// parseFunctionAccess consumes one `[...]` construct (and, for
// definitions/closures, the `{...}` body that immediately follows it).
func (p *Parser) parseFunctionAccess(flag PrintFlag) Node {
	return p.parseFunctionAccessConsumer(flag, false)
}

func (p *Parser) parseFunctionAccessConsumer(flag PrintFlag, isComposeConsumer bool) Node {
	start := p.cur
	p.expect(token.LBracket)

	switch p.cur.Type {
	case token.Dollar:
		return p.parseFuncDef(start)
	case token.Question:
		return p.parseClosure(start, flag)
	case token.Bang:
		return p.parseAnonCall(start, flag, isComposeConsumer)
	default:
		return p.parseNamedCall(start, flag, isComposeConsumer)
	}
}

func (p *Parser) parseBracedBody(mode Mode) *Sequence {
	p.expect(token.LBrace)
	body, _, _ := p.parseSequence(mode)
	p.expect(token.RBrace)
	return body
}

// parseParamList parses `name[?|*|+] (; name[?|*|+])*` up to (but not
// consuming) the terminating `]`.
func (p *Parser) parseParamList() []Param {
	var params []Param
	for {
		name, _ := p.parseIdentifier()
		varity := Required
		switch p.cur.Type {
		case token.Question:
			varity = Optional
			p.advance()
		case token.Star:
			varity = VariadicStar
			p.advance()
		case token.Plus:
			varity = VariadicPlus
			p.advance()
		}
		params = append(params, Param{Name: name, Varity: varity})
		if p.cur.Type == token.Semi {
			p.advance()
			continue
		}
		break
	}
	p.reportParamOrderError(ValidateParamOrder(params))
	return params
}

func (p *Parser) reportParamOrderError(err error) {
	if err == nil {
		return
	}
	switch e := err.(type) {
	case *DuplicateParameterError:
		p.softError(diag.DuplicateParameter, e.Error())
	case *MultipleVariadicError:
		p.softError(diag.MultipleVariadicParams, e.Error())
	case *ParamOrderError:
		p.softError(diag.InvalidParamOrder, e.Error())
	}
}

func (p *Parser) parseFuncDef(start token.Token) Node {
	p.advance() // '$'
	path := p.parseAccessPath()

	var params []Param
	if p.cur.Type == token.Colon {
		p.advance()
		params = p.parseParamList()
	}
	p.expect(token.RBracket)

	p.pushScope()
	for _, prm := range params {
		p.define(prm.Name)
	}
	p.pushCaptureFrame()
	body := p.parseBracedBody(ModeFunctionBody)
	captured := p.popCaptureFrame()
	p.popScope()

	return &FuncDefNode{Path: path, Params: params, Body: body, Captured: captured.names(), P: p.posAt(start)}
}

func (p *Parser) parseClosure(start token.Token, flag PrintFlag) Node {
	p.advance() // '?'

	var params []Param
	if p.cur.Type == token.Colon {
		p.advance()
		params = p.parseParamList()
	}
	p.expect(token.RBracket)

	p.pushScope()
	for _, prm := range params {
		p.define(prm.Name)
	}
	p.pushCaptureFrame()
	body := p.parseBracedBody(ModeFunctionBody)
	captured := p.popCaptureFrame()
	p.popScope()

	return &ClosureNode{Params: params, Body: body, Captured: captured.names(), Flag: flag, P: p.posAt(start)}
}

func (p *Parser) parseAnonCall(start token.Token, flag PrintFlag, isComposeConsumer bool) Node {
	p.advance() // '!'
	callee, end, _ := p.parseSequence(ModeAnonFunctionExpr)

	var args []*Sequence
	composeTail := false
	switch end {
	case EndAnonFuncNoArgs:
		p.expect(token.RBracket)
	case EndAnonFuncArgsFollow:
		p.expect(token.Colon)
		args, composeTail = p.parseArgList(isComposeConsumer)
	case EndAnonFuncToCompose:
		p.expect(token.Amp)
		composeTail = true
		p.expect(token.RBracket)
	}

	call := Node(&AnonCallNode{Callee: callee, Args: args, Flag: flag, P: p.posAt(start)})
	return p.finishCompose(call, composeTail)
}

func (p *Parser) parseNamedCall(start token.Token, flag PrintFlag, isComposeConsumer bool) Node {
	name, _ := p.parseIdentifier()
	p.notePossibleCapture(name)

	var args []*Sequence
	composeTail := false
	switch p.cur.Type {
	case token.RBracket:
		p.advance()
	case token.Colon:
		p.advance()
		args, composeTail = p.parseArgList(isComposeConsumer)
	case token.Amp:
		p.advance()
		composeTail = true
		p.expect(token.RBracket)
	default:
		p.softError(diag.ExpectedToken, "expected ':', '&' or ']' after call name, found "+p.cur.String())
		p.advance()
	}

	call := Node(&NamedCallNode{Name: name, Args: args, Compose: isComposeConsumer, Flag: flag, P: p.posAt(start)})
	return p.finishCompose(call, composeTail)
}

// parseArgList parses `arg (; arg)*` up to `]`. When allowComposeValue
// is set, a bare `&` standing alone as an argument is the compose-value
// placeholder rather than a truncation of this call's own arg list —
// used when this call is itself the consumer of an enclosing
// ComposeChainNode.
func (p *Parser) parseArgList(allowComposeValue bool) (args []*Sequence, composeTail bool) {
	for {
		if allowComposeValue && p.cur.Type == token.Amp {
			start := p.cur
			p.advance()
			ph := &Sequence{Origin: p.origin, Nodes: []Node{&ComposeValueNode{P: p.posAt(start)}}}
			args = append(args, ph)
		} else {
			arg, end, _ := p.parseSequence(ModeFunctionArg)
			args = append(args, arg)
			switch end {
			case EndFunctionArgToCompose:
				p.expect(token.Amp)
				composeTail = true
				p.expect(token.RBracket)
				return args, composeTail
			case EndFunctionArgsEnd:
				p.expect(token.RBracket)
				return args, false
			}
		}

		switch p.cur.Type {
		case token.Semi:
			p.advance()
			continue
		case token.RBracket:
			p.advance()
			return args, composeTail
		default:
			p.softError(diag.ExpectedToken, "expected ';' or ']' in argument list, found "+p.cur.String())
			return args, composeTail
		}
	}
}

// finishCompose wires a just-parsed producer call into a ComposeChainNode
// with the function-access construct that must immediately follow it,
// per spec §4.2's `&` compose terminator.
func (p *Parser) finishCompose(producer Node, composeTail bool) Node {
	if !composeTail {
		return producer
	}
	if p.cur.Type != token.LBracket {
		p.softError(diag.NothingToCompose, "expected a function access to compose with '&', found "+p.cur.String())
		return producer
	}
	consumer := p.parseFunctionAccessConsumer(PrintNone, true)
	return &ComposeChainNode{Producer: producer, Consumer: consumer}
}
