// Package resolver implements the per-block iteration state machine
// (spec §4.4): attribute frames (reps/separator/selector/conditional
// state), block state, and the stateful selector modes.
//
// File : rant/resolver/resolver.go
//
// No teacher analogue — go-mix has no block-of-alternatives construct.
// Grounded directly on original_source/src/runtime/resolver.rs's
// Resolver/AttributeFrame/BlockState/Selector, ported near-verbatim
// since the Rust is already a precise state machine with no host
// idioms to translate away. Doc-comment density and one-struct-per-
// concept shape follow the teacher's scope/scope.go and
// objects/objects.go style.
package resolver

import "github.com/textgen/rant/parser"

// Reps is the repetition count requested by the pending attribute
// frame (spec §4.4 "reps").
type Reps struct {
	kind  repsKind
	count int // meaningful when kind == repsCount
}

type repsKind int

const (
	repsOnce repsKind = iota
	repsForever
	repsAll
	repsCount
)

var RepsOnce = Reps{kind: repsOnce}
var RepsForever = Reps{kind: repsForever}
var RepsAll = Reps{kind: repsAll}

func RepsN(n int) Reps { return Reps{kind: repsCount, count: n} }

func (r Reps) IsInfinite() bool { return r.kind == repsForever }

// CountFor resolves reps against a block's element count (spec §4.4
// "All (n := block size)").
func (r Reps) CountFor(elementCount int) int {
	switch r.kind {
	case repsForever:
		return 0
	case repsOnce:
		return 1
	case repsAll:
		return elementCount
	case repsCount:
		return r.count
	default:
		return 1
	}
}

// AttributeFrame holds state that modifies the *next* block only (spec
// §4.4 "Attribute frame"). Ported from resolver.rs's AttributeFrame.
type AttributeFrame struct {
	Condval            *bool // nil == unset
	PrevCondval        *bool
	NoPropagateCondval bool
	Reps               Reps
	Separator          interface{} // a value.Value; kept generic to avoid an import cycle hazard, set by the VM
	Selector           *Selector
}

func defaultAttrs() *AttributeFrame {
	return &AttributeFrame{Reps: RepsOnce}
}

// propagateAttrs creates the next frame, carrying forward `frame`'s
// condval unless that frame suppressed propagation (spec §4.4
// "no_propagate_condval").
func propagateAttrs(frame *AttributeFrame) *AttributeFrame {
	next := defaultAttrs()
	if !frame.NoPropagateCondval {
		next.PrevCondval = frame.Condval
	}
	return next
}

func boolPtr(b bool) *bool { return &b }

// MakeIf sets condval and suppresses propagation iff the condition is
// true (spec §4.4's make_if).
func (a *AttributeFrame) MakeIf(cond bool) {
	a.Condval = boolPtr(cond)
	a.NoPropagateCondval = cond
}

// MakeElse sets condval to the negation of any propagated prior
// condval (defaulting to false) and always halts further propagation.
func (a *AttributeFrame) MakeElse() {
	if a.PrevCondval != nil {
		a.Condval = boolPtr(!*a.PrevCondval)
	} else {
		a.Condval = boolPtr(false)
	}
	a.NoPropagateCondval = true
}

// MakeElseIf sets condval to (¬prior ∧ cond) and propagates iff the
// clause did not fire (spec §4.4's make_else_if).
func (a *AttributeFrame) MakeElseIf(cond bool) {
	hasPropagated := a.PrevCondval == nil
	if a.PrevCondval != nil {
		a.Condval = boolPtr(!*a.PrevCondval && cond)
	} else {
		a.Condval = boolPtr(false)
	}
	a.NoPropagateCondval = cond || hasPropagated
}

// BlockState tracks one active block's iteration progress (spec §4.4
// "block state").
type BlockState struct {
	Elements         []*parser.Sequence
	ForceStop        bool
	Flag             parser.PrintFlag
	Attrs            *AttributeFrame
	curSteps         int
	totalSteps       int
	prevStepSeparated bool
}

// IsRepeater reports whether this block's reps imply more than one
// pass (spec §4.5 "RepeaterElement" frame flavor targets these).
func (b *BlockState) IsRepeater() bool {
	switch b.Attrs.Reps.kind {
	case repsCount, repsForever, repsAll:
		return true
	default:
		return false
	}
}

// IsDone reports whether the block has finished (spec §4.4
// "Per-iteration algorithm").
func (b *BlockState) IsDone() bool {
	if b.ForceStop {
		return true
	}
	if b.Attrs.Condval != nil && !*b.Attrs.Condval {
		return true
	}
	if !b.Attrs.Reps.IsInfinite() && b.curSteps >= b.totalSteps {
		return true
	}
	return false
}

func (b *BlockState) StepIndex() int { return b.curSteps - 1 }
func (b *BlockState) Step() int      { return b.curSteps }
func (b *BlockState) StepCount() int { return b.totalSteps }

// ActionKind distinguishes the two things NextElement can produce.
type ActionKind int

const (
	ActionElement ActionKind = iota
	ActionSeparator
)

// Action is what NextElement hands back: either the next element
// sequence to run, or the separator value to print between elements.
type Action struct {
	Kind     ActionKind
	Element  *parser.Sequence
	Separator interface{} // the Attrs.Separator value.Value, echoed back
}

// RandSource is the RNG a Selector and uniform random selection draw
// from — just enough of value.Runtime to avoid an import cycle
// (resolver must not depend on value or vm).
type RandSource interface {
	// NextIndex returns a uniform random index in [0, n).
	NextIndex(n int) int
}

// NextElement drives the alternate-element/separator algorithm (spec
// §4.4 "Per-iteration algorithm"): the first output is always an
// element, never a separator.
func (b *BlockState) NextElement(rng RandSource) (*Action, error) {
	if b.IsDone() {
		return nil, nil
	}
	if b.curSteps == 0 || b.prevStepSeparated {
		b.prevStepSeparated = false
		b.curSteps++
		var idx int
		var err error
		if b.Attrs.Selector != nil {
			idx, err = b.Attrs.Selector.Select(len(b.Elements), rng)
			if err != nil {
				return nil, err
			}
		} else {
			idx = rng.NextIndex(len(b.Elements))
		}
		return &Action{Kind: ActionElement, Element: b.Elements[idx]}, nil
	}
	b.prevStepSeparated = true
	return &Action{Kind: ActionSeparator, Separator: b.Attrs.Separator}, nil
}

// Resolver owns the attribute-frame stack and the active block stack
// (spec §4.4). Ported from resolver.rs's Resolver.
type Resolver struct {
	baseAttrs        *AttributeFrame
	attrOverrideStack []*AttributeFrame
	blockStack       []*BlockState
}

func New() *Resolver {
	return &Resolver{
		baseAttrs:         defaultAttrs(),
		attrOverrideStack: nil,
		blockStack:        nil,
	}
}

// PushBlock constructs a BlockState from the currently pending
// attribute frame and pushes it (spec §4.4, §4.5 "Block → push
// resolver state").
func (r *Resolver) PushBlock(elements []*parser.Sequence, blockFlag parser.PrintFlag, callerFlag parser.PrintFlag) *BlockState {
	attrs := r.TakeAttrs()
	state := &BlockState{
		Elements:   elements,
		Flag:       prioritizeFlag(blockFlag, callerFlag),
		Attrs:      attrs,
		totalSteps: attrs.Reps.CountFor(len(elements)),
	}
	r.blockStack = append(r.blockStack, state)
	return state
}

// prioritizeFlag mirrors PrintFlag::prioritize: an explicit flag at the
// use site (Hint/Sink) overrides the block's own default; the block's
// own flag applies only when the site carries none (spec's "hint
// propagates outward" rule is enforced by the parser; this is the
// runtime's site-vs-definition tie-break).
func prioritizeFlag(defined, site parser.PrintFlag) parser.PrintFlag {
	if site != parser.PrintNone {
		return site
	}
	return defined
}

func (r *Resolver) PopBlock() *BlockState {
	n := len(r.blockStack)
	if n == 0 {
		return nil
	}
	state := r.blockStack[n-1]
	r.blockStack = r.blockStack[:n-1]
	return state
}

func (r *Resolver) ActiveBlock() *BlockState {
	if len(r.blockStack) == 0 {
		return nil
	}
	return r.blockStack[len(r.blockStack)-1]
}

// ActiveRepeater finds the nearest enclosing block whose reps imply
// repetition — the target for a bare `[continue]`/`[break]` native
// that doesn't specify a block by name.
func (r *Resolver) ActiveRepeater() *BlockState {
	for i := len(r.blockStack) - 1; i >= 0; i-- {
		if r.blockStack[i].IsRepeater() {
			return r.blockStack[i]
		}
	}
	return nil
}

// TakeAttrs takes the topmost attribute frame (base, or the active
// override if push_attrs was called) and replaces it with a fresh one
// that propagates condval per propagateAttrs's rule.
func (r *Resolver) TakeAttrs() *AttributeFrame {
	if len(r.attrOverrideStack) == 0 {
		taken := r.baseAttrs
		r.baseAttrs = propagateAttrs(taken)
		return taken
	}
	top := len(r.attrOverrideStack) - 1
	taken := r.attrOverrideStack[top]
	r.attrOverrideStack[top] = propagateAttrs(taken)
	return taken
}

// ResetAttrs discards the pending frame entirely (used when a block
// call errors out before consuming it).
func (r *Resolver) ResetAttrs() {
	if len(r.attrOverrideStack) == 0 {
		r.baseAttrs = defaultAttrs()
		return
	}
	r.attrOverrideStack[len(r.attrOverrideStack)-1] = defaultAttrs()
}

// PushAttrs opens a nested attribute-override scope (used by
// constructs that need to build up attributes without disturbing the
// base frame, e.g. argument evaluation that itself contains a block).
func (r *Resolver) PushAttrs() {
	r.attrOverrideStack = append(r.attrOverrideStack, defaultAttrs())
}

func (r *Resolver) PopAttrs() *AttributeFrame {
	n := len(r.attrOverrideStack)
	if n == 0 {
		return nil
	}
	top := r.attrOverrideStack[n-1]
	r.attrOverrideStack = r.attrOverrideStack[:n-1]
	return top
}

func (r *Resolver) CountAttrs() int { return len(r.attrOverrideStack) + 1 }

// Attrs returns the currently pending attribute frame without
// consuming it.
func (r *Resolver) Attrs() *AttributeFrame {
	if len(r.attrOverrideStack) == 0 {
		return r.baseAttrs
	}
	return r.attrOverrideStack[len(r.attrOverrideStack)-1]
}
