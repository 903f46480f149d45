package vm

func tableKeyOf(v Value) (string, bool) {
	switch {
	case v.IsString():
		return v.AsString(), true
	case v.IsSymbol():
		return v.SymbolName(), true
	default:
		return "", false
	}
}

func installTablePrimitives(v *VM) {
	sel := v.Selectors
	tbl := v.TableClass

	tbl.AddMethod(sel, "size", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return IntValue(int64(recv.AsTable().Len())), nil
	})
	tbl.AddMethod(sel, "at:put:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		key, ok := tableKeyOf(args[0])
		if !ok {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "Table keys must be String or Symbol")
		}
		recv.AsTable().Set(key, args[1])
		return args[1], nil
	})
	tbl.AddMethod(sel, "at:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		key, ok := tableKeyOf(args[0])
		if !ok {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "Table keys must be String or Symbol")
		}
		val, found := recv.AsTable().Get(key)
		if !found {
			return interp.signalError(proc, interp.VM.ErrorClass, "key not found: "+key)
		}
		return val, nil
	})
	tbl.AddMethod(sel, "at:ifAbsent:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		key, ok := tableKeyOf(args[0])
		if ok {
			if val, found := recv.AsTable().Get(key); found {
				return val, nil
			}
		}
		return callValueBlock(interp, proc, args[1])
	})
	tbl.AddMethod(sel, "includesKey:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		key, ok := tableKeyOf(args[0])
		if !ok {
			return False, nil
		}
		return BoolValue(recv.AsTable().Has(key)), nil
	})
	tbl.AddMethod(sel, "keys", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		keys := recv.AsTable().Keys()
		out := make([]Value, len(keys))
		for i, k := range keys {
			out[i] = StringValue(k)
		}
		return ArrayValue(out), nil
	})
	tbl.AddMethod(sel, "do:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "do: requires a Block")
		}
		blk := args[0].AsBlock()
		for _, k := range recv.AsTable().Keys() {
			val, _ := recv.AsTable().Get(k)
			if _, sig := interp.CallBlockArgs(proc, blk, []Value{val}); sig != nil {
				return Nil, sig
			}
		}
		return recv, nil
	})
	tbl.AddMethod(sel, "keysAndValuesDo:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "keysAndValuesDo: requires a Block")
		}
		blk := args[0].AsBlock()
		for _, k := range recv.AsTable().Keys() {
			val, _ := recv.AsTable().Get(k)
			if _, sig := interp.CallBlockArgs(proc, blk, []Value{StringValue(k), val}); sig != nil {
				return Nil, sig
			}
		}
		return recv, nil
	})
}
