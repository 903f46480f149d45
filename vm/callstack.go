package vm

// StackEntry describes one live activation for the diagnostic call-stack
// dump printed with an uncaught exception: an indented list of selector
// per frame and receiver class; no source position is recorded. It is pushed and
// popped by invoke around every method dispatch; primitives and block
// activations do not get their own entry, so a trace reports method
// sends rather than every nested block evaluation.
type StackEntry struct {
	Selector      string
	ReceiverClass string
}

// StackTrace returns a snapshot of proc's currently live method
// activations, outermost first, safe to keep after the process has
// moved on since it is copied out of the live slice.
func (p *Process) StackTrace() []StackEntry {
	out := make([]StackEntry, len(p.CallStack))
	copy(out, p.CallStack)
	return out
}
