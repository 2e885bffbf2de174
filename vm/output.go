package vm

// File : rant/vm/output.go
//
// OutputWriter implements spec §9's whitespace model exactly as
// described: "whitespace is pending until a printing element appears;
// it is discarded when followed by a non-printing element... track an
// is_printing flag per sequence and a single slot for pending
// whitespace — not flush whitespace eagerly." No teacher analogue
// (go-mix has no whitespace-significant output model); grounded
// directly on spec §4.2/§9.

import (
	"strings"

	"github.com/textgen/rant/value"
)

// OutputWriter accumulates one frame's textual output (spec §4.5
// "an output writer (optional)").
type OutputWriter struct {
	buf        strings.Builder
	pendingWS  string
	hasPending bool
	isPrinting bool

	// override holds a single Value written via WriteValueOverride when
	// nothing else has been written to this writer — spec's single-
	// value-expression optimisation (an argument/init sequence whose
	// sole node is a value-producing construct yields that Value
	// directly rather than its stringified form).
	override    value.Value
	hasOverride bool
	wroteOther  bool
}

func NewOutputWriter() *OutputWriter { return &OutputWriter{} }

// WriteWS stages a whitespace run. Per spec §9 it is never flushed
// eagerly — only when a subsequent printing write arrives, and only if
// this writer has already printed something before (leading whitespace
// before the first printed element is always discarded).
func (w *OutputWriter) WriteWS(text string) {
	w.pendingWS = text
	w.hasPending = true
}

// flushPending writes any staged whitespace, but only once something
// has already been printed (spec §4.2 "whitespace adjacent to a
// printing element is preserved if another printing element has
// appeared in the current sequence").
func (w *OutputWriter) flushPending() {
	if w.hasPending {
		if w.isPrinting {
			w.buf.WriteString(w.pendingWS)
		}
		w.hasPending = false
		w.pendingWS = ""
	}
}

// WriteFrag writes literal text (fragments, literals rendered to
// string) and marks this writer as printing.
func (w *OutputWriter) WriteFrag(text string) {
	w.flushPending()
	w.buf.WriteString(text)
	w.isPrinting = true
	w.wroteOther = true
	w.hasOverride = false
}

// WriteValue writes a Value's stringified form, unless it is Empty
// (spec §5 "write_value... if val.is_empty() return"). Also records it
// as the override candidate if this is the first and only write.
func (w *OutputWriter) WriteValue(v value.Value) {
	if v.IsEmpty() {
		return
	}
	if !w.wroteOther && !w.hasOverride {
		w.override = v
		w.hasOverride = true
	} else {
		w.hasOverride = false
	}
	w.flushPending()
	w.buf.WriteString(v.ToString())
	w.isPrinting = true
	w.wroteOther = true
}

// Wrote reports whether anything has been written to this writer yet
// (used by compose-chain evaluation to decide whether the consumer's
// own print flag already suppressed its result).
func (w *OutputWriter) Wrote() bool { return w.wroteOther || w.hasOverride }

// Discard marks that a non-printing construct was encountered,
// clearing any pending whitespace without emitting it.
func (w *OutputWriter) Discard() {
	w.hasPending = false
	w.pendingWS = ""
}

// Render finishes the writer: if the writer produced exactly one
// Value write and nothing else, that Value is returned directly
// (preserving its type, e.g. an Integer argument stays an Integer);
// otherwise the accumulated text is returned as a String.
func (w *OutputWriter) Render() value.Value {
	if w.hasOverride {
		return w.override
	}
	return value.Str(w.buf.String())
}

// String renders unconditionally to text, used for the program's final
// textual result (spec §6 "run(Program) -> String").
func (w *OutputWriter) String() string {
	return w.buf.String()
}
