package vm

import (
	"strconv"

	"github.com/nemo-lang/nemo/compiler"
)

// send performs an ordinary (non-super) message send: the method lookup
// begins at the receiver's own class.
func (interp *Interpreter) send(frame *Frame, proc *Process, recv Value, selector string, args []Value) (Value, *Signal) {
	return interp.sendFrom(frame, proc, recv, selector, args, compiler.NotSuper, "")
}

// sendFrom is the general dispatch entry point used for both ordinary
// and super sends.
func (interp *Interpreter) sendFrom(frame *Frame, proc *Process, recv Value, selector string, args []Value, super compiler.SuperKind, superClassName string) (Value, *Signal) {
	selID := interp.VM.Selectors.Intern(selector)

	entry, found := interp.resolve(frame, recv, selID, super, superClassName)
	if !found {
		return interp.doesNotUnderstand(proc, recv, selector, args)
	}
	if entry.Ambiguous {
		return interp.signalError(proc, interp.VM.AmbiguousMethodClass,
			"multiple superclasses define "+selector+" and none overrides it")
	}
	return interp.invoke(proc, recv, entry, selector, args)
}

// resolve finds the MergedMethods (or MergedClassMethods, for a Class
// receiver) entry for selID, honoring plain/scoped super starting
// points.
func (interp *Interpreter) resolve(frame *Frame, recv Value, selID uint32, super compiler.SuperKind, superClassName string) (*MethodEntry, bool) {
	switch super {
	case compiler.PlainSuper:
		return interp.resolveSuper(frame.DefiningClass, selID)
	case compiler.ScopedSuper:
		if v, ok := interp.VM.Globals.Get(superClassName); ok && v.IsClass() {
			return v.AsClass().LookupMethod(selID)
		}
		return nil, false
	default:
		if recv.IsClass() {
			return recv.AsClass().LookupClassMethod(selID)
		}
		return interp.VM.ClassOf(recv).LookupMethod(selID)
	}
}

// resolveSuper looks up selID starting one level above definingClass:
// across every direct superclass. A single distinct match resolves
// normally; more than one distinct match is an AmbiguousMethod,
// resolvable by the caller writing `super<Parent>` instead.
func (interp *Interpreter) resolveSuper(definingClass *Class, selID uint32) (*MethodEntry, bool) {
	var found *MethodEntry
	var ambiguous bool
	for _, sup := range definingClass.Superclasses {
		entry, ok := sup.LookupMethod(selID)
		if !ok {
			continue
		}
		if found == nil {
			found = entry
		} else if found.Owner != entry.Owner {
			ambiguous = true
		}
	}
	if found == nil {
		return nil, false
	}
	if ambiguous {
		return &MethodEntry{Method: found.Method, Owner: found.Owner, Ambiguous: true}, true
	}
	return found, true
}

func (interp *Interpreter) invoke(proc *Process, recv Value, entry *MethodEntry, selector string, args []Value) (Value, *Signal) {
	proc.Depth++
	defer func() { proc.Depth-- }()
	if proc.Depth > interp.VM.StackDepthLimit {
		return interp.signalError(proc, interp.VM.StackOverflowClass, "call stack exceeded maximum depth")
	}

	switch m := entry.Method.(type) {
	case *PrimitiveMethod:
		if m.Args != len(args) {
			return interp.doesNotUnderstand(proc, recv, selector, args)
		}
		return m.Fn(interp, proc, recv, args)
	case *CompiledMethod:
		if len(m.Params) != len(args) {
			return interp.signalError(proc, interp.VM.ArityErrorClass,
				selector+" expects "+strconv.Itoa(len(m.Params))+" argument(s), got "+strconv.Itoa(len(args)))
		}
		proc.CallStack = append(proc.CallStack, StackEntry{
			Selector:      selector,
			ReceiverClass: interp.VM.ClassOf(recv).Name,
		})
		defer func() { proc.CallStack = proc.CallStack[:len(proc.CallStack)-1] }()
		mf := NewMethodFrame(recv, m, entry.Owner)
		for i, p := range m.Params {
			mf.Declare(p, args[i])
		}
		for _, t := range m.Temps {
			mf.Declare(t, Nil)
		}
		_, sig := interp.ExecStatements(mf, proc, m.Body)
		mf.Dead = true
		if sig == nil {
			return recv, nil
		}
		if sig.Kind == SigMethodReturn && sig.Home == mf {
			return sig.Value, nil
		}
		return Nil, sig
	default:
		return interp.doesNotUnderstand(proc, recv, selector, args)
	}
}

// doesNotUnderstand implements the fallback step of message lookup: before
// signaling MessageNotUnderstood it gives the receiver's class a chance to
// handle the miss via an overridden doesNotUnderstand: method, invoked with
// the original selector as a Symbol.
func (interp *Interpreter) doesNotUnderstand(proc *Process, recv Value, selector string, args []Value) (Value, *Signal) {
	dnuSel := interp.VM.Selectors.Intern("doesNotUnderstand:")
	var entry *MethodEntry
	var found bool
	if recv.IsClass() {
		entry, found = recv.AsClass().LookupClassMethod(dnuSel)
	} else {
		entry, found = interp.VM.ClassOf(recv).LookupMethod(dnuSel)
	}
	if found && !entry.Ambiguous {
		selSym := interp.VM.Symbols.Intern(selector)
		return interp.invoke(proc, recv, entry, "doesNotUnderstand:", []Value{selSym})
	}
	return interp.signalError(proc, interp.VM.MessageNotUnderstoodClass,
		recv.PrintString()+" does not understand #"+selector)
}

// signalError builds an Exception instance of class and immediately runs
// it through raiseException, matching how a primitive raises a built-in
// error condition exactly as if user code had sent `class signal: text`.
// If a handler resumes the condition, the resumed value is returned as
// an ordinary result; otherwise the unwind/propagation Signal is
// returned for the caller to pass upward unchanged.
func (interp *Interpreter) signalError(proc *Process, class *Class, messageText string) (Value, *Signal) {
	exc := interp.VM.NewException(class, messageText)
	return raiseException(interp, proc, exc)
}
