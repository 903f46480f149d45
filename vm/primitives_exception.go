package vm

func installExceptionPrimitives(v *VM) {
	sel := v.Selectors
	exc := v.ExceptionClass

	exc.AddClassMethod(sel, "signal", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		inst := NewInstance(recv.AsClass())
		return raiseException(interp, proc, inst)
	})
	exc.AddClassMethod(sel, "signal:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		inst := NewInstance(recv.AsClass())
		inst.SetSlot("messageText", args[0])
		return raiseException(interp, proc, inst)
	})
	exc.AddClassMethod(sel, "new", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return InstanceValue(NewInstance(recv.AsClass())), nil
	})

	exc.AddMethod(sel, "signal", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return raiseException(interp, proc, recv.AsInstance())
	})
	exc.AddMethod(sel, "signal:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		recv.AsInstance().SetSlot("messageText", args[0])
		return raiseException(interp, proc, recv.AsInstance())
	})
	exc.AddMethod(sel, "messageText", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		text := recv.AsInstance().GetSlot("messageText")
		if text.IsNil() {
			return StringValue("An exception has occurred"), nil
		}
		return text, nil
	})
	exc.AddMethod(sel, "messageText:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		recv.AsInstance().SetSlot("messageText", args[0])
		return recv, nil
	})
	exc.AddMethod(sel, "description", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		text := recv.AsInstance().GetSlot("messageText")
		if text.IsNil() {
			return StringValue(recv.AsInstance().Class.Name), nil
		}
		return text, nil
	})

	exc.AddMethod(sel, "resume", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return resumeWith(proc, Nil)
	})
	exc.AddMethod(sel, "resume:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return resumeWith(proc, args[0])
	})
	exc.AddMethod(sel, "retry", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		h := currentHandler(proc)
		if h == nil {
			return interp.signalError(proc, interp.VM.ErrorClass, "retry sent outside an active handler")
		}
		return Nil, &Signal{Kind: SigRetryUnwind, Target: h}
	})
	exc.AddMethod(sel, "pass", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		h := currentHandler(proc)
		if h == nil {
			return interp.signalError(proc, interp.VM.ErrorClass, "pass sent outside an active handler")
		}
		return Nil, &Signal{Kind: SigPass, Target: h}
	})
	exc.AddMethod(sel, "return", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return returnWith(proc, Nil)
	})
	exc.AddMethod(sel, "return:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return returnWith(proc, args[0])
	})
}

func resumeWith(proc *Process, v Value) (Value, *Signal) {
	h := currentHandler(proc)
	if h == nil {
		return Nil, nil
	}
	return Nil, &Signal{Kind: SigResume, Target: h, Value: v}
}

func returnWith(proc *Process, v Value) (Value, *Signal) {
	h := currentHandler(proc)
	if h == nil {
		return v, nil
	}
	return Nil, &Signal{Kind: SigUnwindTo, Target: h, Value: v}
}
