package stdlib

// File : rant/stdlib/math.go
//
// Arithmetic natives — names and arg shape grounded on
// original_source/src/stdlib.rs's "Math functions" group (add, sub,
// mul, div, mod, neg, clamp, is-odd, is-even); doc-comment density and
// the Syntax/Usage/Example block style is carried from the teacher's
// std/math.go. Every binary operator except div stays Integer if both
// operands are Integer and falls back to Float otherwise, matching
// spec §3's numeric pair (Integer, Float) rather than promoting
// everything to Float unconditionally; div always returns Float.

import "github.com/textgen/rant/value"

var mathDefs = []Def{
	{Name: "add", Params: []value.Param{req("lhs"), req("rhs"), star("extra")}, Fn: addFn},
	{Name: "sub", Params: []value.Param{req("lhs"), req("rhs")}, Fn: subFn},
	{Name: "mul", Params: []value.Param{req("lhs"), req("rhs"), star("extra")}, Fn: mulFn},
	{Name: "div", Params: []value.Param{req("lhs"), req("rhs")}, Fn: divFn},
	{Name: "mod", Params: []value.Param{req("lhs"), req("rhs")}, Fn: modFn},
	{Name: "neg", Params: []value.Param{req("val")}, Fn: negFn},
	{Name: "abs", Params: []value.Param{req("val")}, Fn: absFn},
	{Name: "min", Params: []value.Param{req("lhs"), req("rhs"), star("extra")}, Fn: minFn},
	{Name: "max", Params: []value.Param{req("lhs"), req("rhs"), star("extra")}, Fn: maxFn},
	{Name: "clamp", Params: []value.Param{req("val"), req("lo"), req("hi")}, Fn: clampFn},
	{Name: "is-odd", Params: []value.Param{req("val")}, Fn: isOddFn},
	{Name: "is-even", Params: []value.Param{req("val")}, Fn: isEvenFn},
}

func bothInt(a, b value.Value) bool { return a.Kind == value.KindInteger && b.Kind == value.KindInteger }

// addFn sums its operands, staying Integer when every operand is
// Integer (spec §3's numeric pair).
//
// Example: add(2; 3) -> 5; add(2; 3.5) -> 5.5
func addFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Empty, wantAtLeast("add", len(args), 2)
	}
	allInt := true
	var fsum float64
	var isum int64
	for _, a := range args {
		if !a.IsNumeric() {
			return value.Empty, argErrorf("add", "expects numeric arguments, got %s", a.Kind)
		}
		fsum += a.ToFloat()
		if a.Kind != value.KindInteger {
			allInt = false
		} else {
			isum += a.Int
		}
	}
	if allInt {
		return value.Int(isum), nil
	}
	return value.Float(fsum), nil
}

func subFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("sub", len(args), 2)
	}
	if bothInt(args[0], args[1]) {
		return value.Int(args[0].Int - args[1].Int), nil
	}
	return value.Float(args[0].ToFloat() - args[1].ToFloat()), nil
}

func mulFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Empty, wantAtLeast("mul", len(args), 2)
	}
	allInt := true
	fprod := 1.0
	iprod := int64(1)
	for _, a := range args {
		if !a.IsNumeric() {
			return value.Empty, argErrorf("mul", "expects numeric arguments, got %s", a.Kind)
		}
		fprod *= a.ToFloat()
		if a.Kind != value.KindInteger {
			allInt = false
		} else {
			iprod *= a.Int
		}
	}
	if allInt {
		return value.Int(iprod), nil
	}
	return value.Float(fprod), nil
}

// divFn always produces a Float, matching the original's div (integer
// division has no dedicated native here; use int(div(...)) instead).
func divFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("div", len(args), 2)
	}
	divisor := args[1].ToFloat()
	if divisor == 0 {
		return value.Empty, argErrorf("div", "division by zero")
	}
	return value.Float(args[0].ToFloat() / divisor), nil
}

func modFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Empty, wantArgs("mod", len(args), 2)
	}
	if bothInt(args[0], args[1]) {
		if args[1].Int == 0 {
			return value.Empty, argErrorf("mod", "division by zero")
		}
		return value.Int(args[0].Int % args[1].Int), nil
	}
	divisor := args[1].ToFloat()
	if divisor == 0 {
		return value.Empty, argErrorf("mod", "division by zero")
	}
	lhs := args[0].ToFloat()
	return value.Float(lhs - divisor*float64(int64(lhs/divisor))), nil
}

func negFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("neg", len(args), 1)
	}
	if args[0].Kind == value.KindInteger {
		return value.Int(-args[0].Int), nil
	}
	return value.Float(-args[0].ToFloat()), nil
}

func absFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("abs", len(args), 1)
	}
	if args[0].Kind == value.KindInteger {
		n := args[0].Int
		if n < 0 {
			n = -n
		}
		return value.Int(n), nil
	}
	f := args[0].ToFloat()
	if f < 0 {
		f = -f
	}
	return value.Float(f), nil
}

func minFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Empty, wantAtLeast("min", len(args), 2)
	}
	best := args[0]
	for _, a := range args[1:] {
		if a.ToFloat() < best.ToFloat() {
			best = a
		}
	}
	return best, nil
}

func maxFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Empty, wantAtLeast("max", len(args), 2)
	}
	best := args[0]
	for _, a := range args[1:] {
		if a.ToFloat() > best.ToFloat() {
			best = a
		}
	}
	return best, nil
}

func clampFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return value.Empty, wantArgs("clamp", len(args), 3)
	}
	v, lo, hi := args[0], args[1], args[2]
	if v.ToFloat() < lo.ToFloat() {
		return lo, nil
	}
	if v.ToFloat() > hi.ToFloat() {
		return hi, nil
	}
	return v, nil
}

func isOddFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("is-odd", len(args), 1)
	}
	return value.Bool(args[0].ToInt()%2 != 0), nil
}

func isEvenFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Empty, wantArgs("is-even", len(args), 1)
	}
	return value.Bool(args[0].ToInt()%2 == 0), nil
}
