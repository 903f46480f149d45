package vm

import "math"

func installNumberPrimitives(v *VM) {
	sel := v.Selectors
	num := v.NumberClass

	binArith := func(name string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) {
		num.AddMethod(sel, name, 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
			if !args[0].IsNumber() {
				return interp.signalError(proc, interp.VM.TypeErrorClass, name+" requires a Number argument")
			}
			if recv.IsInt() && args[0].IsInt() {
				return IntValue(intOp(recv.AsInt(), args[0].AsInt())), nil
			}
			return FloatValue(floatOp(recv.AsFloat64(), args[0].AsFloat64())), nil
		})
	}
	binArith("+", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	binArith("-", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	binArith("*", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })

	num.AddMethod(sel, "/", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsNumber() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "/ requires a Number argument")
		}
		if args[0].AsFloat64() == 0 {
			return interp.signalError(proc, interp.VM.DivisionByZeroClass, "division by zero")
		}
		if recv.IsInt() && args[0].IsInt() && recv.AsInt()%args[0].AsInt() == 0 {
			return IntValue(recv.AsInt() / args[0].AsInt()), nil
		}
		return FloatValue(recv.AsFloat64() / args[0].AsFloat64()), nil
	})
	num.AddMethod(sel, "//", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsInt() || !recv.IsInt() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "// requires Integer operands")
		}
		if args[0].AsInt() == 0 {
			return interp.signalError(proc, interp.VM.DivisionByZeroClass, "division by zero")
		}
		return IntValue(floorDiv(recv.AsInt(), args[0].AsInt())), nil
	})
	modulo := func(name string) {
		num.AddMethod(sel, name, 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
			if !args[0].IsInt() || !recv.IsInt() {
				return interp.signalError(proc, interp.VM.TypeErrorClass, name+" requires Integer operands")
			}
			if args[0].AsInt() == 0 {
				return interp.signalError(proc, interp.VM.DivisionByZeroClass, "division by zero")
			}
			return IntValue(floorMod(recv.AsInt(), args[0].AsInt())), nil
		})
	}
	modulo("\\\\")
	modulo("%")

	cmp := func(name string, cmpFn func(a, b float64) bool) {
		num.AddMethod(sel, name, 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
			if !args[0].IsNumber() {
				return interp.signalError(proc, interp.VM.TypeErrorClass, name+" requires a Number argument")
			}
			return BoolValue(cmpFn(recv.AsFloat64(), args[0].AsFloat64())), nil
		})
	}
	cmp("<", func(a, b float64) bool { return a < b })
	cmp(">", func(a, b float64) bool { return a > b })
	cmp("<=", func(a, b float64) bool { return a <= b })
	cmp(">=", func(a, b float64) bool { return a >= b })
	cmp("=", func(a, b float64) bool { return a == b })

	num.AddMethod(sel, "negated", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsInt() {
			return IntValue(-recv.AsInt()), nil
		}
		return FloatValue(-recv.AsFloat()), nil
	})
	num.AddMethod(sel, "abs", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsInt() {
			n := recv.AsInt()
			if n < 0 {
				n = -n
			}
			return IntValue(n), nil
		}
		return FloatValue(math.Abs(recv.AsFloat())), nil
	})
	num.AddMethod(sel, "sqrt", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return FloatValue(math.Sqrt(recv.AsFloat64())), nil
	})
	num.AddMethod(sel, "asFloat", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return FloatValue(recv.AsFloat64()), nil
	})
	num.AddMethod(sel, "asInteger", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return IntValue(int64(recv.AsFloat64())), nil
	})
	num.AddMethod(sel, "min:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.AsFloat64() <= args[0].AsFloat64() {
			return recv, nil
		}
		return args[0], nil
	})
	num.AddMethod(sel, "max:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.AsFloat64() >= args[0].AsFloat64() {
			return recv, nil
		}
		return args[0], nil
	})

	integer := v.IntegerClass
	integer.AddMethod(sel, "factorial", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		n := recv.AsInt()
		if n < 0 {
			return interp.signalError(proc, interp.VM.ErrorClass, "factorial requires a non-negative Integer")
		}
		result := int64(1)
		for i := int64(2); i <= n; i++ {
			result *= i
		}
		return IntValue(result), nil
	})
	integer.AddMethod(sel, "even", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.AsInt()%2 == 0), nil
	})
	integer.AddMethod(sel, "odd", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.AsInt()%2 != 0), nil
	})
	integer.AddMethod(sel, "timesRepeat:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "timesRepeat: requires a Block")
		}
		blk := args[0].AsBlock()
		for i := int64(0); i < recv.AsInt(); i++ {
			if _, sig := interp.CallBlockArgs(proc, blk, nil); sig != nil {
				return Nil, sig
			}
		}
		return recv, nil
	})
	num.AddMethod(sel, "to:do:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[1].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "to:do: requires a Block")
		}
		blk := args[1].AsBlock()
		start, stop := recv.AsFloat64(), args[0].AsFloat64()
		useInt := recv.IsInt() && args[0].IsInt()
		for i := start; i <= stop; i++ {
			var arg Value
			if useInt {
				arg = IntValue(int64(i))
			} else {
				arg = FloatValue(i)
			}
			if _, sig := interp.CallBlockArgs(proc, blk, []Value{arg}); sig != nil {
				return Nil, sig
			}
		}
		return recv, nil
	})
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}
