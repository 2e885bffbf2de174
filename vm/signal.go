package vm

// File : rant/vm/signal.go
//
// break/continue/return propagate as a distinguished error value
// checked by the evaluator after every recursive call, rather than
// through the intent queue's explicit frame-flavor scan — see this
// package's doc comment in vm.go and DESIGN.md for why the VM core is
// a bounded-depth recursive walker instead of a flattened trampoline.
// scope.Flavor/CallStack.TasteForFirst are still real and still used:
// callFunction pushes a FunctionBody frame and a break/continue signal
// that reaches it uncaught becomes a runtime error, exactly matching
// spec §5's "flavor blocks a stronger boundary" rule.
import "github.com/textgen/rant/value"

type signalKind int

const (
	signalBreak signalKind = iota
	signalContinue
	signalReturn
)

// signal is returned (wrapped as an error) by evalSequence/evalNode
// when a break/continue/return native fires. It is caught at the
// nearest evaluator that owns the matching construct (evalBlock for
// break/continue, callFunction for return) and must never escape Run.
type signal struct {
	kind  signalKind
	value value.Value // meaningful for signalReturn
}

func (s *signal) Error() string {
	switch s.kind {
	case signalBreak:
		return "break outside of block"
	case signalContinue:
		return "continue outside of block"
	default:
		return "return outside of function"
	}
}

func asSignal(err error) (*signal, bool) {
	s, ok := err.(*signal)
	return s, ok
}

// Break, Continue, and Return construct the error values the `break`,
// `continue`, and `return` natives raise (spec §3 "Control-flow
// natives"). Exported so stdlib's native implementations can produce
// them without either package needing to expose the unexported signal
// type itself — only the vm package ever type-asserts on it.
func Break() error           { return &signal{kind: signalBreak} }
func Continue() error        { return &signal{kind: signalContinue} }
func Return(v value.Value) error { return &signal{kind: signalReturn, value: v} }
