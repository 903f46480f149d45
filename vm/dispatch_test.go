package vm

import "testing"

func TestBinarySelectorsEvaluateLeftToRight(t *testing.T) {
	v := newTestVM(t)
	val := mustEval(t, v, "2 + 3 * 4.")
	if !val.IsInt() || val.AsInt() != 20 {
		t.Errorf("2 + 3 * 4 = %v, want 20 (binary selectors are left-to-right, no precedence)", val.PrintString())
	}
}

func TestUserDefinedClassAndMethodDispatch(t *testing.T) {
	v := newTestVM(t)
	src := `
Point := Object derive: #(x y).
Point>>x: ax y: ay [ x := ax. y := ay ].
Point>>sum [ ^ x + y ].
p := Point new.
p x: 3 y: 4.
p sum.
`
	val := mustEval(t, v, src)
	if !val.IsInt() || val.AsInt() != 7 {
		t.Errorf("p sum = %v, want 7", val.PrintString())
	}
}

func TestClassSideMethodOrigin(t *testing.T) {
	v := newTestVM(t)
	src := `
Point := Object derive: #(x y).
Point class>>origin [ ^ self new x: 0 y: 0 ].
Point>>x: ax y: ay [ x := ax. y := ay. ^ self ].
Point>>x [ ^ x ].
o := Point origin.
o x.
`
	val := mustEval(t, v, src)
	if !val.IsInt() || val.AsInt() != 0 {
		t.Errorf("Point origin x = %v, want 0", val.PrintString())
	}
}

func TestUnknownSelectorRaisesMessageNotUnderstood(t *testing.T) {
	v := newTestVM(t)
	_, sig := evalSrc(t, v, "3 frobnicate.")
	if sig == nil || sig.Kind != SigUnhandled {
		t.Fatalf("expected an unhandled signal, got %v", sig)
	}
	if !sig.Exc.Class.IsKindOf(v.MessageNotUnderstoodClass) {
		t.Errorf("exception class = %s, want a kind of MessageNotUnderstood", sig.Exc.Class.Name)
	}
}

func TestMultipleInheritanceAmbiguityRaisesAtSendTime(t *testing.T) {
	v := newTestVM(t)
	src := `
A := Object derive: #().
A>>greet [ ^ "A" ].
B := Object derive: #().
B>>greet [ ^ "B" ].
C := A derive: #().
C addParent: B.
c := C new.
c greet.
`
	_, sig := evalSrc(t, v, src)
	if sig == nil || sig.Kind != SigUnhandled {
		t.Fatalf("expected an unhandled AmbiguousMethod signal, got %v", sig)
	}
	if !sig.Exc.Class.IsKindOf(v.AmbiguousMethodClass) {
		t.Errorf("exception class = %s, want a kind of AmbiguousMethod", sig.Exc.Class.Name)
	}
}

func TestOverridingResolvesInheritedAmbiguity(t *testing.T) {
	v := newTestVM(t)
	src := `
A := Object derive: #().
A>>greet [ ^ "A" ].
B := Object derive: #().
B>>greet [ ^ "B" ].
C := A derive: #().
C addParent: B.
C>>greet [ ^ "C" ].
c := C new.
c greet.
`
	val := mustEval(t, v, src)
	if !val.IsString() || val.AsString() != "C" {
		t.Errorf("c greet = %v, want %q", val.PrintString(), "C")
	}
}

func TestSuperDispatchWithSingleInheritance(t *testing.T) {
	v := newTestVM(t)
	src := `
A := Object derive: #().
A>>x [ ^ 1 ].
B := A derive: #().
B>>x [ ^ super x + 1 ].
b := B new.
b x.
`
	val := mustEval(t, v, src)
	if !val.IsInt() || val.AsInt() != 2 {
		t.Errorf("b x = %v, want 2", val.PrintString())
	}
}

func TestCompiledMethodArityMismatchRaisesArityError(t *testing.T) {
	v := newTestVM(t)
	src := `
Point := Object derive: #(x y).
Point>>x: ax y: ay [ x := ax. y := ay ].
p := Point new.
p perform: #x:y: withArguments: #(1).
`
	_, sig := evalSrc(t, v, src)
	if sig == nil || sig.Kind != SigUnhandled {
		t.Fatalf("expected an unhandled signal, got %v", sig)
	}
	if !sig.Exc.Class.IsKindOf(v.ArityErrorClass) {
		t.Errorf("exception class = %s, want a kind of ArityError", sig.Exc.Class.Name)
	}
}

func TestObjectAtPutAccessesNamedSlotsBySelector(t *testing.T) {
	v := newTestVM(t)
	src := `
Point := Object derive: #(x y).
p := Point new.
p at: #x put: 3.
p at: #y put: 4.
(p at: #x) + (p at: #y).
`
	val := mustEval(t, v, src)
	if !val.IsInt() || val.AsInt() != 7 {
		t.Errorf("(p at: #x) + (p at: #y) = %v, want 7", val.PrintString())
	}
}

func TestObjectAtOnMissingSlotSignalsError(t *testing.T) {
	v := newTestVM(t)
	src := `
Point := Object derive: #(x y).
p := Point new.
p at: #z.
`
	_, sig := evalSrc(t, v, src)
	if sig == nil || sig.Kind != SigUnhandled {
		t.Fatalf("expected an unhandled signal, got %v", sig)
	}
	if !sig.Exc.Class.IsKindOf(v.ErrorClass) {
		t.Errorf("exception class = %s, want a kind of Error", sig.Exc.Class.Name)
	}
}

func TestDoesNotUnderstandOverrideInterceptsUnknownSelectors(t *testing.T) {
	v := newTestVM(t)
	src := `
Ghost := Object derive: #().
Ghost>>doesNotUnderstand: aSelector [ ^ aSelector ].
g := Ghost new.
g frobnicate.
`
	val := mustEval(t, v, src)
	if !val.IsSymbol() || val.SymbolName() != "frobnicate" {
		t.Errorf("g frobnicate = %v, want #frobnicate", val.PrintString())
	}
}

func TestMessageNotUnderstoodStillSignalsWithoutOverride(t *testing.T) {
	v := newTestVM(t)
	_, sig := evalSrc(t, v, "42 frobnicate.")
	if sig == nil || sig.Kind != SigUnhandled {
		t.Fatalf("expected an unhandled signal, got %v", sig)
	}
	if !sig.Exc.Class.IsKindOf(v.MessageNotUnderstoodClass) {
		t.Errorf("exception class = %s, want a kind of MessageNotUnderstood", sig.Exc.Class.Name)
	}
}

func TestUnboundUppercaseIdentifierSignalsNameError(t *testing.T) {
	v := newTestVM(t)
	_, sig := evalSrc(t, v, "Nonexistent.")
	if sig == nil || sig.Kind != SigUnhandled {
		t.Fatalf("expected an unhandled signal, got %v", sig)
	}
	if !sig.Exc.Class.IsKindOf(v.NameErrorClass) {
		t.Errorf("exception class = %s, want a kind of NameError", sig.Exc.Class.Name)
	}
}

func TestUnboundLowercaseIdentifierStillEvaluatesToNil(t *testing.T) {
	v := newTestVM(t)
	val := mustEval(t, v, "unassigned.")
	if !val.IsNil() {
		t.Errorf("unassigned = %v, want nil", val.PrintString())
	}
}

func TestPrimitiveArgumentMismatchSignalsTypeError(t *testing.T) {
	v := newTestVM(t)
	_, sig := evalSrc(t, v, `3 + "not a number".`)
	if sig == nil || sig.Kind != SigUnhandled {
		t.Fatalf("expected an unhandled signal, got %v", sig)
	}
	if !sig.Exc.Class.IsKindOf(v.TypeErrorClass) {
		t.Errorf("exception class = %s, want a kind of TypeError", sig.Exc.Class.Name)
	}
}

func TestDeriveSentAsMessageStillNamesTheClass(t *testing.T) {
	v := newTestVM(t)
	val := mustEval(t, v, "Object derive: #(x).")
	if !val.IsClass() {
		t.Fatalf("Object derive: #(x) = %v, want a Class", val.PrintString())
	}
	if val.AsClass().Name == "" {
		t.Errorf("class created by the derive: message has an empty name, want a placeholder")
	}
}

func TestScopedSuperDisambiguatesMultipleInheritance(t *testing.T) {
	v := newTestVM(t)
	src := `
A := Object derive: #().
A>>x [ ^ 1 ].
B := Object derive: #().
B>>x [ ^ 2 ].
C := A derive: #().
C addParent: B.
C>>x [ ^ super<B> x ].
c := C new.
c x.
`
	val := mustEval(t, v, src)
	if !val.IsInt() || val.AsInt() != 2 {
		t.Errorf("c x = %v, want 2 (scoped super should pick B's x)", val.PrintString())
	}
}
