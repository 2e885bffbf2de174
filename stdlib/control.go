package stdlib

// File : rant/stdlib/control.go
//
// `break`, `continue`, `return` (original_source/src/stdlib.rs's
// "Block attribute / control flow functions" group). These are the
// only natives whose entire effect is a control-flow signal rather
// than a value; they raise it via vm.Break/vm.Continue/vm.Return so
// this package never needs access to vm's unexported signal type.

import (
	"github.com/textgen/rant/value"
	"github.com/textgen/rant/vm"
)

var controlDefs = []Def{
	{Name: "break", Params: nil, Fn: breakFn},
	{Name: "continue", Params: nil, Fn: continueFn},
	{Name: "return", Params: []value.Param{opt("value")}, Fn: returnFn},
}

func breakFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.Empty, vm.Break()
}

func continueFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.Empty, vm.Continue()
}

func returnFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	v := value.Empty
	if len(args) > 0 {
		v = args[0]
	}
	return value.Empty, vm.Return(v)
}
