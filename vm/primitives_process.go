package vm

// installProcessPrimitives installs the cooperative-scheduling protocol:
// Process class-side fork:/yield/sleep:/current, Process instance-side
// suspend/resume/terminate/state, and the two wait-condition kinds,
// Semaphore and Channel.
func installProcessPrimitives(v *VM) {
	sel := v.Selectors
	proc := v.ProcessClass
	sema := v.SemaphoreClass
	chn := v.ChannelClass

	proc.AddClassMethod(sel, "fork:", 1, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(p, interp.VM.TypeErrorClass, "fork: requires a Block")
		}
		child := interp.VM.Scheduler.Fork(interp, args[0].AsBlock(), nil)
		return ProcessValue(child), nil
	})
	proc.AddClassMethod(sel, "fork:named:", 2, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsBlock() {
			return interp.signalError(p, interp.VM.TypeErrorClass, "fork:named: requires a Block")
		}
		if !args[1].IsString() {
			return interp.signalError(p, interp.VM.TypeErrorClass, "fork:named: requires a String name")
		}
		child := interp.VM.Scheduler.ForkNamed(interp, args[0].AsBlock(), nil, args[1].AsString())
		return ProcessValue(child), nil
	})
	proc.AddClassMethod(sel, "yield", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		p.Yield()
		return Nil, nil
	})
	proc.AddClassMethod(sel, "sleep:", 1, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsInt() {
			return interp.signalError(p, interp.VM.TypeErrorClass, "sleep: requires an Integer tick count")
		}
		interp.VM.Scheduler.Sleep(p, args[0].AsInt())
		return Nil, nil
	})
	proc.AddClassMethod(sel, "current", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		return ProcessValue(p), nil
	})

	proc.AddMethod(sel, "resume", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		interp.VM.Scheduler.Resume(recv.AsProcess())
		return recv, nil
	})
	proc.AddMethod(sel, "suspend", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		target := recv.AsProcess()
		if target != p {
			return interp.signalError(p, interp.VM.ProcessErrorClass, "a process can only suspend itself")
		}
		target.Suspend()
		return recv, nil
	})
	proc.AddMethod(sel, "terminate", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		interp.VM.Scheduler.Terminate(recv.AsProcess())
		return recv, nil
	})
	proc.AddMethod(sel, "isTerminated", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		return BoolValue(recv.AsProcess().State == ProcTerminated), nil
	})
	proc.AddMethod(sel, "state", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		return interp.VM.Symbols.Intern(recv.AsProcess().State.String()), nil
	})
	proc.AddMethod(sel, "pid", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		return IntValue(int64(recv.AsProcess().ID)), nil
	})
	proc.AddMethod(sel, "name", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue(recv.AsProcess().Name), nil
	})

	sema.AddClassMethod(sel, "new", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		return SemaphoreValue(NewSemaphore(0)), nil
	})
	sema.AddClassMethod(sel, "new:", 1, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsInt() {
			return interp.signalError(p, interp.VM.TypeErrorClass, "new: requires an Integer initial count")
		}
		return SemaphoreValue(NewSemaphore(int(args[0].AsInt()))), nil
	})
	sema.AddMethod(sel, "wait", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		recv.AsSemaphore().Wait(interp.VM.Scheduler, p)
		return recv, nil
	})
	sema.AddMethod(sel, "signal", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		recv.AsSemaphore().Signal(interp.VM.Scheduler)
		return recv, nil
	})

	chn.AddClassMethod(sel, "new", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		return ChannelValue(NewChannel(0)), nil
	})
	chn.AddClassMethod(sel, "new:", 1, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		if !args[0].IsInt() {
			return interp.signalError(p, interp.VM.TypeErrorClass, "new: requires an Integer capacity")
		}
		return ChannelValue(NewChannel(int(args[0].AsInt()))), nil
	})
	chn.AddMethod(sel, "send:", 1, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		recv.AsChannel().Send(interp.VM.Scheduler, p, args[0])
		return recv, nil
	})
	chn.AddMethod(sel, "receive", 0, func(interp *Interpreter, p *Process, recv Value, args []Value) (Value, *Signal) {
		return recv.AsChannel().Receive(interp.VM.Scheduler, p), nil
	})
}
