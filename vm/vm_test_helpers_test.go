package vm

import (
	"testing"

	"github.com/nemo-lang/nemo/compiler"
)

// newTestVM builds a fully bootstrapped VM for end-to-end scenario tests.
func newTestVM(t *testing.T) *VM {
	t.Helper()
	v := NewVM()
	Bootstrap(v)
	return v
}

// evalSrc parses and runs src at top level against a fresh Process,
// returning whatever RunTopLevel returns.
func evalSrc(t *testing.T, v *VM, src string) (Value, *Signal) {
	t.Helper()
	prog, err := compiler.Parse(src)
	if err != nil {
		t.Fatalf("parse error for %q: %v", src, err)
	}
	interp := NewInterpreter(v)
	proc := &Process{}
	return interp.RunTopLevel(proc, prog)
}

// mustEval evaluates src and fails the test if it produces a Signal.
func mustEval(t *testing.T, v *VM, src string) Value {
	t.Helper()
	val, sig := evalSrc(t, v, src)
	if sig != nil {
		t.Fatalf("evaluating %q raised a signal: kind=%v", src, sig.Kind)
	}
	return val
}
