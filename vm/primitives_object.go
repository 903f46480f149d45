package vm

import "fmt"

func installObjectPrimitives(v *VM) {
	obj := v.ObjectClass
	sel := v.Selectors

	obj.AddMethod(sel, "class", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return ClassValue(interp.VM.ClassOf(recv)), nil
	})
	obj.AddMethod(sel, "printString", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue(recv.PrintString()), nil
	})
	obj.AddMethod(sel, "printNl", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		fmt.Fprintln(interp.VM.Stdout, recv.PrintString())
		return recv, nil
	})
	obj.AddMethod(sel, "==", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.Identical(args[0])), nil
	})
	obj.AddMethod(sel, "~=", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(!recv.Identical(args[0])), nil
	})
	obj.AddMethod(sel, "=", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(valueEquals(recv, args[0])), nil
	})
	obj.AddMethod(sel, "isNil", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.IsNil()), nil
	})
	obj.AddMethod(sel, "notNil", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(!recv.IsNil()), nil
	})
	obj.AddMethod(sel, "ifNil:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !recv.IsNil() {
			return recv, nil
		}
		return callValueBlock(interp, proc, args[0])
	})
	obj.AddMethod(sel, "ifNotNil:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsNil() {
			return Nil, nil
		}
		return callValueBlockWith(interp, proc, args[0], recv)
	})
	obj.AddMethod(sel, "ifNil:ifNotNil:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsNil() {
			return callValueBlock(interp, proc, args[0])
		}
		return callValueBlockWith(interp, proc, args[1], recv)
	})
	obj.AddMethod(sel, "respondsTo:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsSymbol() {
			return False, nil
		}
		selID := interp.VM.Selectors.Intern(args[0].SymbolName())
		if recv.IsClass() {
			_, ok := recv.AsClass().LookupClassMethod(selID)
			return BoolValue(ok), nil
		}
		_, ok := interp.VM.ClassOf(recv).LookupMethod(selID)
		return BoolValue(ok), nil
	})
	obj.AddMethod(sel, "perform:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsSymbol() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "perform: requires a Symbol selector")
		}
		return interp.send(nil, proc, recv, args[0].SymbolName(), nil)
	})
	obj.AddMethod(sel, "at:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		name, ok := tableKeyOf(args[0])
		if !ok {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "at: requires a String or Symbol slot name")
		}
		if !recv.IsInstance() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "at: requires a receiver with named slots")
		}
		inst := recv.AsInstance()
		if inst.SlotIndex(name) < 0 {
			return interp.signalError(proc, interp.VM.ErrorClass, "no such slot: "+name)
		}
		return inst.GetSlot(name), nil
	})
	obj.AddMethod(sel, "at:put:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		name, ok := tableKeyOf(args[0])
		if !ok {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "at:put: requires a String or Symbol slot name")
		}
		if !recv.IsInstance() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "at:put: requires a receiver with named slots")
		}
		inst := recv.AsInstance()
		if inst.SlotIndex(name) < 0 {
			return interp.signalError(proc, interp.VM.ErrorClass, "no such slot: "+name)
		}
		inst.SetSlot(name, args[1])
		return args[1], nil
	})
	obj.AddMethod(sel, "perform:with:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsSymbol() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "perform:with: requires a Symbol selector")
		}
		return interp.send(nil, proc, recv, args[0].SymbolName(), []Value{args[1]})
	})
	obj.AddMethod(sel, "perform:withArguments:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsSymbol() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "perform:withArguments: requires a Symbol selector")
		}
		if !args[1].IsArray() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "perform:withArguments: requires an Array")
		}
		return interp.send(nil, proc, recv, args[0].SymbolName(), args[1].AsArray().Elements)
	})
}

// valueEquals implements the default `=`: value-equal for immediates and
// strings, identity for everything else unless a class overrides `=`.
func valueEquals(a, b Value) bool {
	if a.Tag() != b.Tag() {
		if a.IsNumber() && b.IsNumber() {
			return a.AsFloat64() == b.AsFloat64()
		}
		return false
	}
	switch a.Tag() {
	case TagString:
		return a.AsString() == b.AsString()
	default:
		return a.Identical(b)
	}
}

// callValueBlock invokes a zero-arg block argument, or simply returns v
// unchanged if it is not a Block (a common Smalltalk convenience so
// ifNil: etc. accept either a block or a plain value).
func callValueBlock(interp *Interpreter, proc *Process, v Value) (Value, *Signal) {
	if v.IsBlock() {
		return interp.CallBlockArgs(proc, v.AsBlock(), nil)
	}
	return v, nil
}

func callValueBlockWith(interp *Interpreter, proc *Process, v Value, arg Value) (Value, *Signal) {
	if v.IsBlock() {
		blk := v.AsBlock()
		if blk.NumArgs() == 0 {
			return interp.CallBlockArgs(proc, blk, nil)
		}
		return interp.CallBlockArgs(proc, blk, []Value{arg})
	}
	return v, nil
}
