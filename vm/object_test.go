package vm

import (
	"bytes"
	"testing"
)

func TestEqualityIsValueForStringsAndNumbersAndIdentityOtherwise(t *testing.T) {
	v := newTestVM(t)
	if !mustEval(t, v, `"abc" = "abc".`).IsTrue() {
		t.Error("equal strings should compare = true")
	}
	if !mustEval(t, v, `3 = 3.0.`).IsTrue() {
		t.Error("an Integer and an equal-valued Float should compare = true")
	}
	if !mustEval(t, v, `(Array new: 1) == (Array new: 1).`).IsFalse() {
		t.Error("two distinct Array allocations should not be == (identical)")
	}
}

func TestIfNilAndIfNotNilDispatchOnReceiver(t *testing.T) {
	v := newTestVM(t)
	val := mustEval(t, v, `nil ifNil: [ "was nil" ].`)
	if !val.IsString() || val.AsString() != "was nil" {
		t.Errorf("nil ifNil: = %v, want \"was nil\"", val.PrintString())
	}
	val = mustEval(t, v, `5 ifNotNil: [:x | x + 1 ].`)
	if !val.IsInt() || val.AsInt() != 6 {
		t.Errorf("5 ifNotNil: = %v, want 6", val.PrintString())
	}
	val = mustEval(t, v, `nil ifNil: [ 0 ] ifNotNil: [:x | x ].`)
	if !val.IsInt() || val.AsInt() != 0 {
		t.Errorf("nil ifNil:ifNotNil: = %v, want 0", val.PrintString())
	}
}

func TestRespondsToReflectsTheMergedMethodTable(t *testing.T) {
	v := newTestVM(t)
	if !mustEval(t, v, "3 respondsTo: #+.").IsTrue() {
		t.Error("Integer should respond to #+")
	}
	if mustEval(t, v, "3 respondsTo: #nonsenseSelector.").IsTrue() {
		t.Error("Integer should not respond to a made-up selector")
	}
}

func TestPrintNlWritesTheDefaultStringFormToStdout(t *testing.T) {
	v := newTestVM(t)
	var buf bytes.Buffer
	v.Stdout = &buf
	val := mustEval(t, v, "42 printNl.")
	if !val.IsInt() || val.AsInt() != 42 {
		t.Errorf("printNl should answer the receiver, got %v", val.PrintString())
	}
	if buf.String() != "42\n" {
		t.Errorf("stdout = %q, want %q", buf.String(), "42\n")
	}
}

func TestPerformSendsTheNamedSelector(t *testing.T) {
	v := newTestVM(t)
	val := mustEval(t, v, "3 perform: #factorial.")
	if !val.IsInt() || val.AsInt() != 6 {
		t.Errorf("3 perform: #factorial = %v, want 6", val.PrintString())
	}
}

func TestPerformWithPassesTheSingleArgument(t *testing.T) {
	v := newTestVM(t)
	val := mustEval(t, v, "3 perform: #+ with: 4.")
	if !val.IsInt() || val.AsInt() != 7 {
		t.Errorf("3 perform: #+ with: 4 = %v, want 7", val.PrintString())
	}
}

func TestPerformWithArgumentsPassesEveryArg(t *testing.T) {
	v := newTestVM(t)
	val := mustEval(t, v, "3 perform: #+ withArguments: #(4).")
	if !val.IsInt() || val.AsInt() != 7 {
		t.Errorf("3 perform:withArguments: #(4) = %v, want 7", val.PrintString())
	}
}
