package vm

// File : rant/vm/call.go
//
// The calling convention (spec §4.5): argument-count validation against
// a function's precomputed MinArgCount/VariadicStart, variadic-tail
// condensation into a List, binding into a fresh FunctionBody-flavoured
// frame (captured values first, then parameters, so a parameter can
// shadow a captured name of the same one), and catching a signalReturn
// at exactly this boundary — a break/continue that reaches here
// uncaught propagates on as a genuine error (see signal.go).
import (
	"github.com/textgen/rant/scope"
	"github.com/textgen/rant/value"
)

// callFunction runs fn with args already evaluated (spec §4.5
// "Invoke"). Native functions get a NativeCall frame around the Go
// call; user functions get a FunctionBody frame, captured values and
// parameters bound into its fresh Locals layer, then their body is run
// to completion or to a return signal.
func (vm *VM) callFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	if fn.Native != nil {
		if err := vm.Calls.Push(&scope.Frame{Flavor: scope.NativeCall, Origin: vm.Origin, SeqName: displayName(fn)}); err != nil {
			return value.Value{}, vm.wrapStackError(err)
		}
		v, err := fn.Native(vm, args)
		vm.Calls.Pop()
		return v, err
	}

	if err := checkArity(fn, len(args)); err != nil {
		return value.Value{}, err
	}
	body, ok := fn.Body.(*seqBody)
	if !ok || body == nil {
		return value.Value{}, newError(UserError, "function %q has no body", displayName(fn))
	}

	if err := vm.Calls.Push(&scope.Frame{Flavor: scope.FunctionBody, Origin: vm.Origin, SeqName: displayName(fn)}); err != nil {
		return value.Value{}, vm.wrapStackError(err)
	}
	defer vm.Calls.Pop()

	for name, v := range fn.Captured {
		vm.Calls.Locals.DefVarValue(vm, name, scope.Local, 0, v)
	}
	bindParams(vm, fn, args)

	out := NewOutputWriter()
	if err := vm.evalInto(body.seq, out); err != nil {
		if sig, ok := asSignal(err); ok {
			if sig.kind == signalReturn {
				return sig.value, nil
			}
			return value.Value{}, newError(UserError, "%s", sig.Error())
		}
		return value.Value{}, err
	}
	return out.Render(), nil
}

func displayName(fn *value.Function) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "<anonymous>"
}

// checkArity validates len(args) against fn's precomputed bounds (spec
// §3 "min_arg_count <= vararg_start_index <= param count").
func checkArity(fn *value.Function, n int) error {
	if n < fn.MinArgCount {
		return newError(ArgumentMismatch, "function %q expects at least %d argument(s), got %d", displayName(fn), fn.MinArgCount, n)
	}
	if fn.VariadicStart >= len(fn.Params) {
		if n > len(fn.Params) {
			return newError(ArgumentMismatch, "function %q expects at most %d argument(s), got %d", displayName(fn), len(fn.Params), n)
		}
		return nil
	}
	if fn.Params[fn.VariadicStart].Varity == value.VariadicPlus && n-fn.VariadicStart < 1 {
		return newError(ArgumentMismatch, "function %q expects at least one variadic argument", displayName(fn))
	}
	return nil
}

// bindParams binds required and optional parameters positionally
// (missing optionals become Empty) and condenses any remaining
// arguments into a single List bound to the variadic parameter's name.
func bindParams(vm *VM, fn *value.Function, args []value.Value) {
	params := fn.Params
	nFixed := fn.VariadicStart

	for i := 0; i < nFixed; i++ {
		v := value.Empty
		if i < len(args) {
			v = args[i]
		}
		vm.Calls.Locals.DefVarValue(vm, params[i].Name, scope.Local, 0, v)
	}

	if nFixed < len(params) {
		var tail []value.Value
		if len(args) > nFixed {
			tail = append(tail, args[nFixed:]...)
		}
		vm.Calls.Locals.DefVarValue(vm, params[nFixed].Name, scope.Local, 0, value.ListOf(value.NewList(tail...)))
	}
}
