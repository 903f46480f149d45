package vm

func installBooleanPrimitives(v *VM) {
	sel := v.Selectors
	boolean := v.BooleanClass

	boolean.AddMethod(sel, "not", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.IsFalse()), nil
	})
	boolean.AddMethod(sel, "&", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.IsTrue() && args[0].IsTrue()), nil
	})
	boolean.AddMethod(sel, "|", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.IsTrue() || args[0].IsTrue()), nil
	})
	boolean.AddMethod(sel, "and:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsFalse() {
			return False, nil
		}
		return callValueBlock(interp, proc, args[0])
	})
	boolean.AddMethod(sel, "or:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsTrue() {
			return True, nil
		}
		return callValueBlock(interp, proc, args[0])
	})
	boolean.AddMethod(sel, "ifTrue:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsTrue() {
			return callValueBlock(interp, proc, args[0])
		}
		return Nil, nil
	})
	boolean.AddMethod(sel, "ifFalse:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsFalse() {
			return callValueBlock(interp, proc, args[0])
		}
		return Nil, nil
	})
	boolean.AddMethod(sel, "ifTrue:ifFalse:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsTrue() {
			return callValueBlock(interp, proc, args[0])
		}
		return callValueBlock(interp, proc, args[1])
	})
	boolean.AddMethod(sel, "ifFalse:ifTrue:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if recv.IsFalse() {
			return callValueBlock(interp, proc, args[0])
		}
		return callValueBlock(interp, proc, args[1])
	})
}
