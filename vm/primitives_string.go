package vm

import (
	"fmt"
	"strconv"
	"strings"
)

func installStringPrimitives(v *VM) {
	sel := v.Selectors
	str := v.StringClass

	str.AddMethod(sel, "size", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return IntValue(int64(len([]rune(recv.AsString())))), nil
	})
	str.AddMethod(sel, "isEmpty", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(len(recv.AsString()) == 0), nil
	})
	str.AddMethod(sel, "at:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		runes := []rune(recv.AsString())
		idx := args[0].AsInt()
		if idx < 1 || int(idx) > len(runes) {
			return interp.signalError(proc, interp.VM.SubscriptOutOfBoundsClass, "String index out of bounds")
		}
		return StringValue(string(runes[idx-1])), nil
	})
	str.AddMethod(sel, ",", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsString() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, ", requires a String argument")
		}
		return StringValue(recv.AsString() + args[0].AsString()), nil
	})
	str.AddMethod(sel, "asUppercase", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue(strings.ToUpper(recv.AsString())), nil
	})
	str.AddMethod(sel, "asLowercase", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue(strings.ToLower(recv.AsString())), nil
	})
	str.AddMethod(sel, "asSymbol", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return interp.VM.Symbols.Intern(recv.AsString()), nil
	})
	str.AddMethod(sel, "indexOf:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsString() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "indexOf: requires a String argument")
		}
		idx := strings.Index(recv.AsString(), args[0].AsString())
		if idx < 0 {
			return IntValue(0), nil
		}
		return IntValue(int64(idx) + 1), nil
	})
	str.AddMethod(sel, "trim", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue(strings.TrimSpace(recv.AsString())), nil
	})
	str.AddMethod(sel, "asInteger", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		n, err := strconv.ParseInt(strings.TrimSpace(recv.AsString()), 10, 64)
		if err != nil {
			return Nil, nil
		}
		return IntValue(n), nil
	})
	str.AddMethod(sel, "repeat:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsInt() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "repeat: requires an Integer count")
		}
		n := args[0].AsInt()
		if n < 0 {
			return interp.signalError(proc, interp.VM.ErrorClass, "repeat: requires a non-negative count")
		}
		return StringValue(strings.Repeat(recv.AsString(), int(n))), nil
	})
	str.AddMethod(sel, "println", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		fmt.Fprintln(interp.VM.Stdout, recv.AsString())
		return recv, nil
	})
}

func installSymbolPrimitives(v *VM) {
	sel := v.Selectors
	sym := v.SymbolClass

	sym.AddMethod(sel, "asString", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue(recv.SymbolName()), nil
	})
	sym.AddMethod(sel, "size", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return IntValue(int64(len([]rune(recv.SymbolName())))), nil
	})
	sym.AddMethod(sel, "==", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(args[0].IsSymbol() && recv.SymbolID() == args[0].SymbolID()), nil
	})
}
