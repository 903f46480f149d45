package vm

import "testing"

func TestWhileTrueLoopsUntilConditionFails(t *testing.T) {
	v := newTestVM(t)
	src := `
i := 0.
sum := 0.
[ i < 5 ] whileTrue: [ i := i + 1. sum := sum + i ].
sum.
`
	val := mustEval(t, v, src)
	if !val.IsInt() || val.AsInt() != 15 {
		t.Errorf("sum = %v, want 15", val.PrintString())
	}
}

func TestWhileFalseLoopsUntilConditionSucceeds(t *testing.T) {
	v := newTestVM(t)
	src := `
i := 0.
[ i >= 3 ] whileFalse: [ i := i + 1 ].
i.
`
	val := mustEval(t, v, src)
	if !val.IsInt() || val.AsInt() != 3 {
		t.Errorf("i = %v, want 3", val.PrintString())
	}
}

func TestEnsureRunsCleanupOnNormalCompletion(t *testing.T) {
	v := newTestVM(t)
	src := `
log := "".
[ log := log , "body" ] ensure: [ log := log , "-cleanup" ].
log.
`
	val := mustEval(t, v, src)
	want := "body-cleanup"
	if !val.IsString() || val.AsString() != want {
		t.Errorf("log = %q, want %q", val.PrintString(), want)
	}
}

func TestEnsureRunsCleanupWhenSignalPropagates(t *testing.T) {
	v := newTestVM(t)
	src := `
log := "".
result := [ [ Error signal: "boom" ] ensure: [ log := log , "cleaned" ] ] on: Error do: [:e | "handled" ].
log , "/" , result.
`
	val := mustEval(t, v, src)
	want := "cleaned/handled"
	if !val.IsString() || val.AsString() != want {
		t.Errorf("result = %q, want %q (ensure: must run its cleanup even though the body raised)", val.PrintString(), want)
	}
}

func TestBlockWrongArityRaisesWrongBlockArity(t *testing.T) {
	v := newTestVM(t)
	src := `[:x :y | x + y] value: 1.`
	_, sig := evalSrc(t, v, src)
	if sig == nil || sig.Kind != SigUnhandled {
		t.Fatalf("expected an unhandled signal, got %v", sig)
	}
	if !sig.Exc.Class.IsKindOf(v.WrongBlockArityClass) {
		t.Errorf("exception class = %s, want a kind of WrongBlockArity", sig.Exc.Class.Name)
	}
}

func TestBlockCapturesEnclosingTemps(t *testing.T) {
	v := newTestVM(t)
	src := `
makeAdder := [:n | [:x | x + n] ].
add5 := makeAdder value: 5.
add5 value: 10.
`
	val := mustEval(t, v, src)
	if !val.IsInt() || val.AsInt() != 15 {
		t.Errorf("add5 value: 10 = %v, want 15 (the inner block should close over n)", val.PrintString())
	}
}
