package parser

// File : rant/parser/block.go
//
// Block parsing: `{A|B|C}`, spec §3 "Block" and §4.2. Attribute state
// (repeater counts, separators, selectors) is set by native calls at
// runtime (spec §4.4), not by inline block syntax, so this is a flat
// list of element sequences plus the pending print flag.

import "github.com/textgen/rant/token"

// parseBlock consumes a `{...}` construct. The caller has already
// classified the pending print flag and passes it through so the
// resulting node carries it.
func (p *Parser) parseBlock(flag PrintFlag) *BlockNode {
	start := p.cur
	p.expect(token.LBrace)

	var elements []*Sequence
	for {
		elem, end, _ := p.parseSequence(ModeBlockElementAny)
		elements = append(elements, elem)
		if end == EndBlockEnd {
			p.expect(token.RBrace)
			break
		}
		// EndBlockDelim: a '|' was consumed by parseSequence's return
		// path conceptually, but parseSequence leaves the terminator
		// token current so the caller can react to it.
		if p.cur.Type == token.Pipe {
			p.advance()
			continue
		}
		if p.cur.Type == token.RBrace {
			p.advance()
			break
		}
		// Unclosed block: parseSequence already reported it on EOF.
		break
	}

	return &BlockNode{Elements: elements, Flag: flag, P: p.posAt(start)}
}
