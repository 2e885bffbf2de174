package parser

// File : rant/parser/capture.go
//
// The two auxiliary stacks spec §4.2 requires alongside the recursive
// descent: a variable scope stack (which names are defined at which
// nesting depth) and a capture frame stack (one entry per enclosing
// function, recording its base depth and the free variables it has
// referenced so far). Grounded on the Rust original's var_stack /
// capture_stack (do_capture_pass in compiler/parser.rs): a name is
// captured by a function iff the innermost scope that defines it sits
// below the function's own base depth (the scope holding its
// parameters), i.e. the name was defined outside the function, or
// doesn't exist at all — both cases reach outside the function's own
// locals.

// captureFrame is one entry of the capture-frame stack: the scope depth
// at which the enclosing function body began, and the free-variable
// names it has referenced so far.
type captureFrame struct {
	baseDepth int
	captured  map[string]bool
}

func newCaptureFrame(baseDepth int) *captureFrame {
	return &captureFrame{baseDepth: baseDepth, captured: map[string]bool{}}
}

// names returns the captured set as a sorted-free slice (insertion order
// doesn't matter to the VM, which binds captures by name into a map).
func (f *captureFrame) names() []string {
	out := make([]string, 0, len(f.captured))
	for n := range f.captured {
		out = append(out, n)
	}
	return out
}

// pushScope opens a new lexical nesting level.
func (p *Parser) pushScope() {
	p.scopeStack = append(p.scopeStack, map[string]bool{})
}

// popScope closes the innermost lexical nesting level.
func (p *Parser) popScope() {
	p.scopeStack = p.scopeStack[:len(p.scopeStack)-1]
}

// depth is the current scope-stack height (number of open levels).
func (p *Parser) depth() int {
	return len(p.scopeStack)
}

// define records name as bound in the innermost open scope.
func (p *Parser) define(name string) {
	p.scopeStack[len(p.scopeStack)-1][name] = true
}

// heightOf searches the scope stack innermost-first and returns the
// depth index (1-based, matching p.depth()'s sense) of the first scope
// that defines name. ok is false if name is defined nowhere.
func (p *Parser) heightOf(name string) (height int, ok bool) {
	for i := len(p.scopeStack) - 1; i >= 0; i-- {
		if p.scopeStack[i][name] {
			return i + 1, true
		}
	}
	return 0, false
}

// pushCaptureFrame begins tracking free variables for a function whose
// body starts at the current scope depth.
func (p *Parser) pushCaptureFrame() *captureFrame {
	f := newCaptureFrame(p.depth())
	p.captureStack = append(p.captureStack, f)
	return f
}

// popCaptureFrame closes the innermost capture frame and returns it so
// the caller can attach its captured names to the function definition.
func (p *Parser) popCaptureFrame() *captureFrame {
	f := p.captureStack[len(p.captureStack)-1]
	p.captureStack = p.captureStack[:len(p.captureStack)-1]
	return f
}

// notePossibleCapture runs the capture pass for a single referenced
// name: for every enclosing capture frame whose base depth is above the
// name's defining depth (or for every frame when the name is
// undefined), the name is added to that frame's capture set.
// Spec §4.2: "if the name is not defined at or below the current
// capture frame's base depth, the name is added to that frame's capture
// set" — applied to every enclosing frame, innermost first, since a
// name free in an inner closure may also be free in an outer one.
func (p *Parser) notePossibleCapture(name string) {
	if len(p.captureStack) == 0 {
		return
	}
	height, defined := p.heightOf(name)
	for i := len(p.captureStack) - 1; i >= 0; i-- {
		frame := p.captureStack[i]
		if !defined || height < frame.baseDepth {
			frame.captured[name] = true
		}
	}
}
