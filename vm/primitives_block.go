package vm

func installBlockPrimitives(v *VM) {
	sel := v.Selectors
	blk := v.BlockClass

	value := func(name string, n int) {
		blk.AddMethod(sel, name, n, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
			return interp.CallBlockArgs(proc, recv.AsBlock(), args)
		})
	}
	value("value", 0)
	value("value:", 1)
	value("value:value:", 2)
	value("value:value:value:", 3)
	value("value:value:value:value:", 4)

	blk.AddMethod(sel, "valueWithArguments:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsArray() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "valueWithArguments: requires an Array")
		}
		return interp.CallBlockArgs(proc, recv.AsBlock(), args[0].AsArray().Elements)
	})
	blk.AddMethod(sel, "numArgs", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return IntValue(int64(recv.AsBlock().NumArgs())), nil
	})
	blk.AddMethod(sel, "whileTrue:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "whileTrue: requires a Block")
		}
		cond, body := recv.AsBlock(), args[0].AsBlock()
		for {
			c, sig := interp.CallBlockArgs(proc, cond, nil)
			if sig != nil {
				return Nil, sig
			}
			if !c.IsTrue() {
				return Nil, nil
			}
			if _, sig := interp.CallBlockArgs(proc, body, nil); sig != nil {
				return Nil, sig
			}
		}
	})
	blk.AddMethod(sel, "whileFalse:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "whileFalse: requires a Block")
		}
		cond, body := recv.AsBlock(), args[0].AsBlock()
		for {
			c, sig := interp.CallBlockArgs(proc, cond, nil)
			if sig != nil {
				return Nil, sig
			}
			if c.IsTrue() {
				return Nil, nil
			}
			if _, sig := interp.CallBlockArgs(proc, body, nil); sig != nil {
				return Nil, sig
			}
		}
	})
	blk.AddMethod(sel, "repeat", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		body := recv.AsBlock()
		for {
			if _, sig := interp.CallBlockArgs(proc, body, nil); sig != nil {
				return Nil, sig
			}
		}
	})
	blk.AddMethod(sel, "ensure:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "ensure: requires a Block")
		}
		val, sig := interp.CallBlockArgs(proc, recv.AsBlock(), nil)
		if _, cleanupSig := interp.CallBlockArgs(proc, args[0].AsBlock(), nil); cleanupSig != nil {
			return Nil, cleanupSig
		}
		return val, sig
	})
	blk.AddMethod(sel, "on:do:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsClass() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "on:do: requires an Exception class")
		}
		if !args[1].IsBlock() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "on:do: requires a handler Block")
		}
		protectedBlock := recv.AsBlock()
		handler := &Handler{
			ExceptionClass: args[0].AsClass(),
			Block:          args[1].AsBlock(),
			Active:         true,
			stackIndex:     len(proc.Handlers),
		}
		for {
			proc.Handlers = append(proc.Handlers, handler)
			val, sig := interp.CallBlockArgs(proc, protectedBlock, nil)
			proc.Handlers = proc.Handlers[:len(proc.Handlers)-1]

			if sig == nil {
				return val, nil
			}
			switch sig.Kind {
			case SigUnwindTo:
				if sig.Target == handler {
					return sig.Value, nil
				}
				return Nil, sig
			case SigRetryUnwind:
				if sig.Target == handler {
					continue
				}
				return Nil, sig
			default:
				return Nil, sig
			}
		}
	})
}
