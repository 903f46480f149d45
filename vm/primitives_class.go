package vm

// installClassPrimitives installs both the default instance-creation
// protocol (Object class>>new and friends) and the class-side
// introspection protocol every class inherits through its class-side
// merged method table, per the way MergedClassMethods walks the same
// Superclasses graph as MergedMethods.
func installClassPrimitives(v *VM) {
	sel := v.Selectors
	obj := v.ObjectClass

	obj.AddClassMethod(sel, "new", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return InstanceValue(NewInstance(recv.AsClass())), nil
	})

	v.ArrayClass.AddClassMethod(sel, "new", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return ArrayValue(nil), nil
	})
	v.ArrayClass.AddClassMethod(sel, "new:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		n := args[0].AsInt()
		if n < 0 {
			return interp.signalError(proc, interp.VM.ErrorClass, "Array new: requires a non-negative size")
		}
		elems := make([]Value, n)
		for i := range elems {
			elems[i] = Nil
		}
		return ArrayValue(elems), nil
	})
	v.ArrayClass.AddClassMethod(sel, "with:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return ArrayValue([]Value{args[0]}), nil
	})
	v.ArrayClass.AddClassMethod(sel, "with:with:", 2, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return ArrayValue([]Value{args[0], args[1]}), nil
	})

	v.TableClass.AddClassMethod(sel, "new", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return TableValue(NewTableVal()), nil
	})

	obj.AddClassMethod(sel, "name", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue(recv.AsClass().Name), nil
	})
	obj.AddClassMethod(sel, "printString", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue(recv.AsClass().Name), nil
	})
	obj.AddClassMethod(sel, "class", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return ClassValue(interp.VM.ClassClass), nil
	})
	obj.AddClassMethod(sel, "==", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.Identical(args[0])), nil
	})
	obj.AddClassMethod(sel, "superclass", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		sups := recv.AsClass().Superclasses
		if len(sups) == 0 {
			return Nil, nil
		}
		return ClassValue(sups[0]), nil
	})
	obj.AddClassMethod(sel, "superclasses", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		sups := recv.AsClass().Superclasses
		out := make([]Value, len(sups))
		for i, s := range sups {
			out[i] = ClassValue(s)
		}
		return ArrayValue(out), nil
	})
	obj.AddClassMethod(sel, "addParent:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsClass() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "addParent: requires a Class")
		}
		recv.AsClass().AddParent(args[0].AsClass())
		return recv, nil
	})
	obj.AddClassMethod(sel, "derive:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsArray() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "derive: requires an Array of slot name Symbols")
		}
		slots := make([]string, len(args[0].AsArray().Elements))
		for i, e := range args[0].AsArray().Elements {
			if !e.IsSymbol() {
				return interp.signalError(proc, interp.VM.TypeErrorClass, "derive: slot names must be Symbols")
			}
			slots[i] = e.SymbolName()
		}
		child := Derive("AnonymousClass", []*Class{recv.AsClass()}, slots)
		return ClassValue(child), nil
	})
	obj.AddClassMethod(sel, "isKindOf:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsClass() {
			return False, nil
		}
		return BoolValue(recv.AsClass().IsKindOf(args[0].AsClass())), nil
	})
	obj.AddClassMethod(sel, "tag:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsSymbol() {
			return interp.signalError(proc, interp.VM.TypeErrorClass, "tag: requires a Symbol")
		}
		recv.AsClass().AddTag(args[0].SymbolName())
		return recv, nil
	})
	obj.AddClassMethod(sel, "hasTag:", 1, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsSymbol() {
			return False, nil
		}
		return BoolValue(recv.AsClass().HasTag(args[0].SymbolName())), nil
	})
	obj.AddClassMethod(sel, "slotNames", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		slots := recv.AsClass().AllSlots
		out := make([]Value, len(slots))
		for i, s := range slots {
			out[i] = interp.VM.Symbols.Intern(s)
		}
		return ArrayValue(out), nil
	})
}
