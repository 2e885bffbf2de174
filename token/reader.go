package token

import "unicode/utf8"

// Reader is a lazy, lookahead-capable cursor over source bytes. It knows
// nothing about token grammar — only how to walk runes, skip whitespace,
// and track line/column for diagnostics. The lexer builds tokens on top
// of it.
//
// Grounded on the teacher's lexer.Lexer byte-cursor fields (Current,
// Position, Line, Column), split into its own type per the "Token
// reader" component.
type Reader struct {
	src string
	pos int // byte offset of the rune about to be returned by Next
	line int
	col  int

	lastStart, lastEnd     int
	lastLine, lastCol      int
}

// NewReader creates a Reader positioned at the start of src.
func NewReader(src string) *Reader {
	return &Reader{src: src, line: 1, col: 1}
}

// Pos returns the current byte offset.
func (r *Reader) Pos() int { return r.pos }

// Line and Column report the reader's current 1-indexed position.
func (r *Reader) Line() int   { return r.line }
func (r *Reader) Column() int { return r.col }

// AtEOF reports whether the reader has consumed the entire source.
func (r *Reader) AtEOF() bool { return r.pos >= len(r.src) }

// SrcSlice returns the raw source bytes in [start, end) as a string.
// Used by the lexer to materialise literals scanned via TakeIf/Next.
func (r *Reader) SrcSlice(start, end int) string { return r.src[start:end] }

// Next consumes and returns the next rune, advancing position and
// line/column bookkeeping. ok is false at end of input.
func (r *Reader) Next() (ch rune, ok bool) {
	if r.pos >= len(r.src) {
		return 0, false
	}
	ch, size := utf8.DecodeRuneInString(r.src[r.pos:])
	r.lastStart = r.pos
	r.pos += size
	r.lastEnd = r.pos
	r.lastLine, r.lastCol = r.line, r.col
	if ch == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return ch, true
}

// Peek returns the next rune without consuming it.
func (r *Reader) Peek() (rune, bool) {
	return r.PeekAt(0)
}

// PeekAt returns the rune n runes ahead (0 == Peek) without consuming.
func (r *Reader) PeekAt(n int) (rune, bool) {
	pos := r.pos
	var ch rune
	var size int
	for i := 0; i <= n; i++ {
		if pos >= len(r.src) {
			return 0, false
		}
		ch, size = utf8.DecodeRuneInString(r.src[pos:])
		pos += size
	}
	return ch, true
}

// TakeIf consumes and returns a maximal run of runes satisfying pred.
// ok is false if no rune matched (position is left unchanged).
func (r *Reader) TakeIf(pred func(rune) bool) (string, bool) {
	start := r.pos
	for {
		ch, ok := r.Peek()
		if !ok || !pred(ch) {
			break
		}
		r.Next()
	}
	if r.pos == start {
		return "", false
	}
	return r.src[start:r.pos], true
}

// SkipWhitespace consumes a maximal run of space/tab/CR/LF and returns
// whether any whitespace was skipped.
func (r *Reader) SkipWhitespace() bool {
	_, ok := r.TakeIf(isSpace)
	return ok
}

// NextNonWhitespace skips whitespace, then consumes and returns the next
// rune (the first non-whitespace one, or EOF).
func (r *Reader) NextNonWhitespace() (rune, bool) {
	r.SkipWhitespace()
	return r.Next()
}

// LastSpan reports the byte range and starting line/column of the most
// recently consumed rune — used by the lexer to stamp token positions.
func (r *Reader) LastSpan() (start, end, line, col int) {
	return r.lastStart, r.lastEnd, r.lastLine, r.lastCol
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
