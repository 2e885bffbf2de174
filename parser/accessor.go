package parser

// File : rant/parser/accessor.go
//
// The `<...>` accessor construct (spec §3 "Access path", §4.2/§4.3):
// variable definition (`$`), get/set/fallback, descope/explicit-global
// prefixes, and `;`-chained multi-clause brackets.
//
// A path's components chain with `/` (original_source/src/compiler/
// parser.rs's parse_access_path: a first component, then a loop
// consuming `/` followed by Name/Index/DynamicKey for each subsequent
// one), so `<list/0>` is one path with two components (Name "list",
// Index 0), not two separate paths. The same `/` token also introduces
// the explicit-global prefix (parsePathPrefix) when it appears before
// any component has been parsed — those are two different positions in
// the grammar, not two different tokens.

import (
	"github.com/textgen/rant/diag"
	"github.com/textgen/rant/token"
)

// parseAccessorBracket consumes one `<...>` construct, which may expand
// to several sibling nodes when clauses are chained with `;`.
func (p *Parser) parseAccessorBracket(flag PrintFlag) []Node {
	p.expect(token.LAngle)

	var nodes []Node
	for {
		node, continues := p.parseAccessorClause(flag)
		if node != nil {
			nodes = append(nodes, node)
		}
		if !continues {
			break
		}
	}
	return nodes
}

// parsePathPrefix consumes an optional descope (`^^…`) or explicit
// global (`/`) marker preceding a path's first component.
func (p *Parser) parsePathPrefix() (AccessKind, int) {
	if p.cur.Type == token.Slash {
		p.advance()
		return ExplicitGlobal, 0
	}
	if p.cur.Type == token.Caret {
		n := 0
		for p.cur.Type == token.Caret {
			n++
			p.advance()
		}
		return Descope, n
	}
	return Local, 0
}

// parsePathComponent consumes one component of a path: an
// anonymous-value root (`@`, legal only as the first component), a
// dynamic key (`{expr}`), an integer index, or a plain name.
func (p *Parser) parsePathComponent() PathComponent {
	switch p.cur.Type {
	case token.At:
		p.advance()
		return PathComponent{Kind: CompAnonymousValue}
	case token.LBrace:
		p.advance()
		expr, _, _ := p.parseSequence(ModeDynamicKey)
		p.expect(token.RBrace)
		return PathComponent{Kind: CompDynamicKey, Expr: expr}
	case token.Integer:
		lit := p.cur
		p.advance()
		idx := parseIntLiteral(lit.Literal)
		return PathComponent{Kind: CompIndex, Index: idx}
	default:
		name, _ := p.parseIdentifier()
		return PathComponent{Kind: CompName, Name: name}
	}
}

func parseIntLiteral(s string) int64 {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var n int64
	for _, c := range s {
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// parseAccessPath consumes a full path: optional prefix, then one
// component, then zero or more `/`-separated subsequent components
// (original_source's parse_access_path).
func (p *Parser) parseAccessPath() *AccessPath {
	kind, levels := p.parsePathPrefix()

	first := p.parsePathComponent()
	if first.Kind == CompIndex {
		// No access path may start with a bare index, regardless of
		// prefix (spec §6 LocalPathStartsWithIndex): an index only
		// makes sense against an already-resolved container, never as
		// a lookup root, whether that root is local, descoped, or the
		// explicit global scope.
		p.softError(diag.LocalPathStartsWithIndex, "access path cannot start with an index")
	}

	components := []PathComponent{first}
	for p.cur.Type == token.Slash {
		p.advance()
		components = append(components, p.parsePathComponent())
	}
	return &AccessPath{Kind: kind, DescopeLevels: levels, Components: components}
}

// parseAccessorClause parses one definition/get/set clause inside a
// `<...>` bracket and reports whether another clause follows (a `;` was
// seen) or the bracket ends here (a `>` was seen).
func (p *Parser) parseAccessorClause(flag PrintFlag) (node Node, continues bool) {
	start := p.cur

	if p.cur.Type == token.Dollar {
		p.advance()
		kind, levels := p.parsePathPrefix()
		name, _ := p.parseIdentifier()
		def := &VarDefNode{Name: name, Access: kind, DescopeLevels: levels, P: p.posAt(start)}
		if p.cur.Type == token.Equals {
			p.advance()
			init, end, _ := p.parseSequence(ModeVariableAssignment)
			if end != EndProgram {
				p.advance()
			}
			def.Init = init
			p.define(name)
			p.notePossibleCapture(name)
			return def, end == EndVarAssignNext
		}
		p.define(name)
		return def, p.closeOrChain()
	}

	path := p.parseAccessPath()
	if name, ok := path.RootName(); ok && path.Kind == Local {
		p.notePossibleCapture(name)
	}

	switch p.cur.Type {
	case token.Equals:
		p.advance()
		value, end, _ := p.parseSequence(ModeVariableAssignment)
		if end != EndProgram {
			p.advance()
		}
		setNode := &VarSetNode{Path: path, Value: value, P: p.posAt(start)}
		return setNode, end == EndVarAssignNext

	case token.Question:
		p.advance()
		fallback, end, _ := p.parseSequence(ModeAccessorFallback)
		if end != EndProgram {
			p.advance()
		}
		getNode := &VarGetNode{Path: path, Fallback: fallback, Flag: flag, P: p.posAt(start)}
		return getNode, end == EndAccessorFallbackNext

	default:
		getNode := &VarGetNode{Path: path, Flag: flag, P: p.posAt(start)}
		return getNode, p.closeOrChain()
	}
}

// closeOrChain is used when a clause had no `=`/`?` sub-sequence of its
// own: the bracket-ending `>` or chain-continuing `;` is still pending
// in the token stream, so check it directly.
func (p *Parser) closeOrChain() bool {
	switch p.cur.Type {
	case token.Semi:
		p.advance()
		return true
	case token.RAngle:
		p.advance()
		return false
	default:
		p.softError(diag.ExpectedToken, "expected ';' or '>' in accessor, found "+p.cur.String())
		return false
	}
}
