package parser

// File : rant/parser/collection.go
//
// List and map initialisers (spec §4.2 disambiguation rules): a bare
// `(` opens a list, `@(` opens a map, elements/pairs separated by `;`,
// closed by `)`.

import (
	"github.com/textgen/rant/diag"
	"github.com/textgen/rant/token"
)

func (p *Parser) parseListInit() Node {
	start := p.cur
	p.expect(token.LParen)

	var elements []*Sequence
	if p.cur.Type == token.RParen {
		p.advance()
		return &ListInitNode{P: p.posAt(start)}
	}
	for {
		elem, end, _ := p.parseSequence(ModeCollectionInit)
		elements = append(elements, elem)
		switch end {
		case EndCollectionNext:
			p.expect(token.Semi)
			continue
		case EndCollectionEnd:
			p.expect(token.RParen)
		default:
			p.expect(token.RParen)
		}
		break
	}
	return &ListInitNode{Elements: elements, P: p.posAt(start)}
}

// parseMapInit consumes `@(` … `)`, where the caller has already seen
// the leading '@' is the current token.
func (p *Parser) parseMapInit() Node {
	start := p.cur
	p.expect(token.At)
	p.expect(token.LParen)

	var pairs []MapPair
	if p.cur.Type == token.RParen {
		p.advance()
		return &MapInitNode{P: p.posAt(start)}
	}
	for {
		key := p.parseMapKey()
		p.expect(token.Equals)
		value, end, _ := p.parseSequence(ModeCollectionInit)
		pairs = append(pairs, MapPair{Key: key, Value: value})
		switch end {
		case EndCollectionNext:
			p.expect(token.Semi)
			continue
		case EndCollectionEnd:
			p.expect(token.RParen)
		default:
			p.expect(token.RParen)
		}
		break
	}
	return &MapInitNode{Pairs: pairs, P: p.posAt(start)}
}

// parseMapKey parses one `key =` entry's key: an identifier fragment, a
// string literal, or a `{dynamic-key-expression}`.
func (p *Parser) parseMapKey() MapKey {
	switch p.cur.Type {
	case token.String:
		k := p.cur.Literal
		p.advance()
		return MapKey{Static: k}
	case token.LBrace:
		p.advance()
		expr, _, _ := p.parseSequence(ModeDynamicKey)
		p.expect(token.RBrace)
		return MapKey{Dynamic: expr}
	case token.Fragment:
		name, _ := p.parseIdentifier()
		return MapKey{Static: name}
	default:
		p.softError(diag.MissingIdentifier, "expected map key, found "+p.cur.String())
		return MapKey{}
	}
}
