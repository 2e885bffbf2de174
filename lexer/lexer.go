// Package lexer classifies the byte stream exposed by token.Reader into
// the tokens consumed by the parser: fragments, whitespace, escapes,
// string literals, numbers, and single-character punctuation.
//
// File : rant/lexer/lexer.go
//
// The lexer is a greedy longest-match tokenizer. Punctuation is always
// one rune; everything else is scanned to a maximal run. The same
// punctuation rune carries different meaning in different parser modes —
// that ambiguity is resolved by the parser, not here (see parser.Mode).
package lexer

import (
	"strconv"
	"strings"

	"github.com/textgen/rant/token"
)

// punctuation is the full set of special single-rune tokens recognised
// outside of fragment/escape/string/number scanning.
var punctuation = map[rune]token.Type{
	'{': token.LBrace, '}': token.RBrace,
	'[': token.LBracket, ']': token.RBracket,
	'(': token.LParen, ')': token.RParen,
	'<': token.LAngle, '>': token.RAngle,
	':': token.Colon, ';': token.Semi,
	'|': token.Pipe, '*': token.Star,
	'+': token.Plus, '?': token.Question,
	'!': token.Bang, '/': token.Slash,
	'^': token.Caret, '$': token.Dollar,
	'@': token.At, '=': token.Equals,
	'&': token.Amp,
}

// Lexer produces a token at a time from source text.
type Lexer struct {
	r *token.Reader
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{r: token.NewReader(src)}
}

// NextToken scans and returns the next token, or an EOF token when the
// source is exhausted.
func (l *Lexer) NextToken() token.Token {
	ch, ok := l.r.Peek()
	if !ok {
		return l.make(token.EOF, "")
	}

	switch {
	case isSpace(ch):
		lit, _ := l.r.TakeIf(isSpace)
		return l.make(token.Whitespace, lit)
	case ch == '\\':
		return l.scanEscape()
	case ch == '\'':
		return l.scanString()
	case isDigit(ch), ch == '-' && isDigitAt(l.r, 1):
		return l.scanNumber()
	default:
		if ty, isPunct := punctuation[ch]; isPunct {
			l.r.Next()
			return l.make(ty, string(ch))
		}
		return l.scanFragment()
	}
}

// keywords maps a fragment's exact text to its keyword token type. A
// fragment only becomes a keyword when the entire maximal run matches —
// "truest" still lexes as a plain Fragment.
var keywords = map[string]token.Type{
	"true":  token.True,
	"false": token.False,
	"empty": token.Empty,
}

// make builds a Token using the reader's last-consumed span. Callers
// must have consumed at least one rune via r.Next()/TakeIf() before
// calling make with a non-empty literal; for EOF, start==end is fine.
func (l *Lexer) make(ty token.Type, lit string) token.Token {
	start, end, line, col := l.r.LastSpan()
	if lit == "" {
		start, end = l.r.Pos(), l.r.Pos()
		line, col = l.r.Line(), l.r.Column()
	} else {
		end = start + len(lit)
	}
	return token.Token{Type: ty, Literal: lit, Line: line, Column: col, Start: start, End: end}
}

// scanFragment consumes a maximal run of characters that are not
// whitespace, not an escape/string introducer, and not punctuation.
func (l *Lexer) scanFragment() token.Token {
	lit, _ := l.r.TakeIf(func(ch rune) bool {
		if isSpace(ch) || ch == '\\' || ch == '\'' {
			return false
		}
		_, isPunct := punctuation[ch]
		return !isPunct
	})
	if lit == "" {
		// Single unrecognised rune (should not normally happen, since
		// punctuation covers every special rune); consume one rune so
		// the lexer always makes progress.
		ch, _ := l.r.Next()
		return l.make(token.Fragment, string(ch))
	}
	if ty, isKeyword := keywords[lit]; isKeyword {
		return l.make(ty, lit)
	}
	return l.make(token.Fragment, lit)
}

// scanEscape decodes a single escape sequence: \n \r \t \0 \s \\, \xNN,
// \uNNNN, or a literal-character escape (\X decodes to X).
func (l *Lexer) scanEscape() token.Token {
	l.r.Next() // consume '\\'
	ch, ok := l.r.Next()
	if !ok {
		return l.make(token.Escape, "\\")
	}
	switch ch {
	case 'n':
		return l.make(token.Escape, "\n")
	case 'r':
		return l.make(token.Escape, "\r")
	case 't':
		return l.make(token.Escape, "\t")
	case '0':
		return l.make(token.Escape, "\x00")
	case 's':
		return l.make(token.Escape, " ")
	case '\\':
		return l.make(token.Escape, "\\")
	case 'x':
		return l.scanHexEscape(2)
	case 'u':
		return l.scanHexEscape(4)
	default:
		return l.make(token.Escape, string(ch))
	}
}

func (l *Lexer) scanHexEscape(digits int) token.Token {
	start := l.r.Pos()
	got := 0
	for got < digits {
		ch, ok := l.r.Peek()
		if !ok || !isHex(ch) {
			break
		}
		l.r.Next()
		got++
	}
	hexStr := l.r.SrcSlice(start, l.r.Pos())
	if got == 0 {
		return l.make(token.Escape, "")
	}
	n, err := strconv.ParseInt(hexStr, 16, 32)
	if err != nil {
		return l.make(token.Escape, "")
	}
	return l.make(token.Escape, string(rune(n)))
}

// scanString scans a single-quoted verbatim literal with a doubled-quote
// escape: '' inside the literal decodes to a single quote character.
// Reaching EOF before a closing quote yields an UnterminatedString token.
func (l *Lexer) scanString() token.Token {
	l.r.Next() // opening '
	var sb strings.Builder
	for {
		ch, ok := l.r.Next()
		if !ok {
			return l.make(token.UnterminatedString, sb.String())
		}
		if ch == '\'' {
			next, hasNext := l.r.Peek()
			if hasNext && next == '\'' {
				l.r.Next()
				sb.WriteByte('\'')
				continue
			}
			return l.make(token.String, sb.String())
		}
		sb.WriteRune(ch)
	}
}

// scanNumber scans an optionally-signed integer or float literal.
func (l *Lexer) scanNumber() token.Token {
	start := l.r.Pos()
	if ch, ok := l.r.Peek(); ok && ch == '-' {
		l.r.Next()
	}
	l.r.TakeIf(isDigit)
	isFloat := false
	if ch, ok := l.r.Peek(); ok && ch == '.' {
		if next, hasNext := l.r.PeekAt(1); hasNext && isDigit(next) {
			isFloat = true
			l.r.Next()
			l.r.TakeIf(isDigit)
		}
	}
	lit := l.r.SrcSlice(start, l.r.Pos())
	if isFloat {
		return l.make(token.Float, lit)
	}
	return l.make(token.Integer, lit)
}

func isSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' }
func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }
func isHex(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isDigitAt(r *token.Reader, n int) bool {
	ch, ok := r.PeekAt(n)
	return ok && isDigit(ch)
}
