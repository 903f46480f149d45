package vm

import "strings"

func installArrayPrimitives(v *VM) {
	sel := v.Selectors
	arr := v.ArrayClass

	arr.AddMethod(sel, "size", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return IntValue(int64(len(recv.AsArray().Elements))), nil
	})
	arr.AddMethod(sel, "isEmpty", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(len(recv.AsArray().Elements) == 0), nil
	})
	arr.AddMethod(sel, "at:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		a := recv.AsArray()
		idx := args[0].AsInt()
		if idx < 1 || int(idx) > len(a.Elements) {
			return interp.signalError(proc, interp.VM.SubscriptOutOfBoundsClass, "Array index out of bounds")
		}
		return a.Elements[idx-1], nil
	})
	arr.AddMethod(sel, "at:put:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		a := recv.AsArray()
		idx := args[0].AsInt()
		if idx < 1 || int(idx) > len(a.Elements) {
			return interp.signalError(proc, interp.VM.SubscriptOutOfBoundsClass, "Array index out of bounds")
		}
		a.Elements[idx-1] = args[1]
		return args[1], nil
	})
	arr.AddMethod(sel, "first", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		a := recv.AsArray()
		if len(a.Elements) == 0 {
			return interp.signalError(proc, interp.VM.SubscriptOutOfBoundsClass, "first sent to an empty Array")
		}
		return a.Elements[0], nil
	})
	arr.AddMethod(sel, "last", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		a := recv.AsArray()
		if len(a.Elements) == 0 {
			return interp.signalError(proc, interp.VM.SubscriptOutOfBoundsClass, "last sent to an empty Array")
		}
		return a.Elements[len(a.Elements)-1], nil
	})
	arr.AddMethod(sel, "add:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		a := recv.AsArray()
		a.Elements = append(a.Elements, args[0])
		return args[0], nil
	})
	arr.AddMethod(sel, ",", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsArray() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, ", requires an Array argument")
		}
		out := append([]Value{}, recv.AsArray().Elements...)
		out = append(out, args[0].AsArray().Elements...)
		return ArrayValue(out), nil
	})
	arr.AddMethod(sel, "includes:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		for _, e := range recv.AsArray().Elements {
			if valueEquals(e, args[0]) {
				return True, nil
			}
		}
		return False, nil
	})
	arr.AddMethod(sel, "reverse", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		src := recv.AsArray().Elements
		out := make([]Value, len(src))
		for i, e := range src {
			out[len(src)-1-i] = e
		}
		return ArrayValue(out), nil
	})
	arr.AddMethod(sel, "do:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "do: requires a Block")
		}
		blk := args[0].AsBlock()
		for _, e := range recv.AsArray().Elements {
			if _, sig := interp.CallBlockArgs(proc, blk, []Value{e}); sig != nil {
				return Nil, sig
			}
		}
		return recv, nil
	})
	arr.AddMethod(sel, "collect:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "collect: requires a Block")
		}
		blk := args[0].AsBlock()
		src := recv.AsArray().Elements
		out := make([]Value, len(src))
		for i, e := range src {
			v, sig := interp.CallBlockArgs(proc, blk, []Value{e})
			if sig != nil {
				return Nil, sig
			}
			out[i] = v
		}
		return ArrayValue(out), nil
	})
	arr.AddMethod(sel, "select:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "select: requires a Block")
		}
		blk := args[0].AsBlock()
		var out []Value
		for _, e := range recv.AsArray().Elements {
			v, sig := interp.CallBlockArgs(proc, blk, []Value{e})
			if sig != nil {
				return Nil, sig
			}
			if v.IsTrue() {
				out = append(out, e)
			}
		}
		return ArrayValue(out), nil
	})
	arr.AddMethod(sel, "reject:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "reject: requires a Block")
		}
		blk := args[0].AsBlock()
		var out []Value
		for _, e := range recv.AsArray().Elements {
			v, sig := interp.CallBlockArgs(proc, blk, []Value{e})
			if sig != nil {
				return Nil, sig
			}
			if v.IsFalse() {
				out = append(out, e)
			}
		}
		return ArrayValue(out), nil
	})
	arr.AddMethod(sel, "inject:into:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[1].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "inject:into: requires a Block")
		}
		blk := args[1].AsBlock()
		acc := args[0]
		for _, e := range recv.AsArray().Elements {
			v, sig := interp.CallBlockArgs(proc, blk, []Value{acc, e})
			if sig != nil {
				return Nil, sig
			}
			acc = v
		}
		return acc, nil
	})
	arr.AddMethod(sel, "detect:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "detect: requires a Block")
		}
		blk := args[0].AsBlock()
		for _, e := range recv.AsArray().Elements {
			v, sig := interp.CallBlockArgs(proc, blk, []Value{e})
			if sig != nil {
				return Nil, sig
			}
			if v.IsTrue() {
				return e, nil
			}
		}
		return interp.signalError(proc, interp.VM.ErrorClass, "detect: found no matching element")
	})
	arr.AddMethod(sel, "join:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsString() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "join: requires a String separator")
		}
		sepStr := args[0].AsString()
		var out strings.Builder
		for i, e := range recv.AsArray().Elements {
			if i > 0 {
				out.WriteString(sepStr)
			}
			out.WriteString(e.PrintString())
		}
		return StringValue(out.String()), nil
	})
}
