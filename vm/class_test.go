package vm

import "testing"

func TestDeriveBuildsSlotLayout(t *testing.T) {
	object := NewClass("Object")
	point := Derive("Point", []*Class{object}, []string{"x", "y"})

	if len(point.AllSlots) != 2 {
		t.Fatalf("AllSlots = %v, want 2 entries", point.AllSlots)
	}
	if point.SlotIndex("x") != 0 || point.SlotIndex("y") != 1 {
		t.Errorf("slot indices = %d, %d, want 0, 1", point.SlotIndex("x"), point.SlotIndex("y"))
	}
	if point.SlotIndex("z") != -1 {
		t.Error("SlotIndex for an unknown slot should be -1")
	}
}

func TestSubclassInheritsSuperclassSlots(t *testing.T) {
	object := NewClass("Object")
	point := Derive("Point", []*Class{object}, []string{"x", "y"})
	point3D := Derive("Point3D", []*Class{point}, []string{"z"})

	want := []string{"x", "y", "z"}
	if len(point3D.AllSlots) != len(want) {
		t.Fatalf("AllSlots = %v, want %v", point3D.AllSlots, want)
	}
	for i, name := range want {
		if point3D.AllSlots[i] != name {
			t.Errorf("AllSlots[%d] = %q, want %q", i, point3D.AllSlots[i], name)
		}
	}
}

func TestSingleInheritanceMethodLookup(t *testing.T) {
	sel := NewSelectorTable()
	object := NewClass("Object")
	animal := Derive("Animal", []*Class{object}, nil)
	animal.AddMethod(sel, "speak", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue("..."), nil
	})
	dog := Derive("Dog", []*Class{animal}, nil)

	id := sel.Intern("speak")
	entry, ok := dog.LookupMethod(id)
	if !ok {
		t.Fatal("Dog should inherit speak from Animal")
	}
	if entry.Owner != animal {
		t.Errorf("Owner = %v, want Animal", entry.Owner)
	}
	if entry.Ambiguous {
		t.Error("a single-inheritance lookup should never be ambiguous")
	}
}

func TestMultipleInheritanceConflictIsAmbiguousUntilOverridden(t *testing.T) {
	sel := NewSelectorTable()
	object := NewClass("Object")
	a := Derive("A", []*Class{object}, nil)
	b := Derive("B", []*Class{object}, nil)
	a.AddMethod(sel, "greet", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue("A"), nil
	})
	b.AddMethod(sel, "greet", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue("B"), nil
	})

	c := Derive("C", []*Class{a}, nil)
	c.AddParent(b)

	id := sel.Intern("greet")
	entry, ok := c.LookupMethod(id)
	if !ok {
		t.Fatal("expected a (ambiguous) entry for greet")
	}
	if !entry.Ambiguous {
		t.Error("greet should be ambiguous: both A and B define it and C does not override")
	}

	c.AddMethod(sel, "greet", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue("C"), nil
	})
	entry, ok = c.LookupMethod(id)
	if !ok || entry.Ambiguous {
		t.Error("overriding greet on C itself should resolve the ambiguity")
	}
	if entry.Owner != c {
		t.Errorf("Owner = %v, want C", entry.Owner)
	}
}

func TestAddParentRecomputesExistingSubclasses(t *testing.T) {
	sel := NewSelectorTable()
	object := NewClass("Object")
	a := Derive("A", []*Class{object}, nil)
	c := Derive("C", []*Class{a}, nil)

	// B is introduced, and greet is added to it, only after C already
	// exists as a subclass of A; AddParent must recompute C too.
	b := Derive("B", []*Class{object}, nil)
	b.AddMethod(sel, "onlyOnB", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return Nil, nil
	})
	a.AddParent(b)

	id := sel.Intern("onlyOnB")
	if _, ok := c.LookupMethod(id); !ok {
		t.Error("C should see onlyOnB transitively once A gains B as a parent")
	}
}

func TestIsKindOfWalksDiamondGraph(t *testing.T) {
	object := NewClass("Object")
	a := Derive("A", []*Class{object}, nil)
	b := Derive("B", []*Class{object}, nil)
	c := Derive("C", []*Class{a}, nil)
	c.AddParent(b)

	if !c.IsKindOf(a) || !c.IsKindOf(b) || !c.IsKindOf(object) {
		t.Error("C should be a kind of every class in its diamond-shaped ancestry")
	}
	if c.IsKindOf(Derive("Unrelated", []*Class{object}, nil)) {
		t.Error("C should not be a kind of an unrelated class")
	}
}

func TestClassSideMethodsMergeAcrossSuperclassesToo(t *testing.T) {
	sel := NewSelectorTable()
	object := NewClass("Object")
	a := Derive("A", []*Class{object}, nil)
	a.AddClassMethod(sel, "make", 0, func(interp *Interpreter, proc *Process, recv Value, args []Value) (Value, *Signal) {
		return StringValue("made by A"), nil
	})
	b := Derive("B", []*Class{a}, nil)

	id := sel.Intern("make")
	entry, ok := b.LookupClassMethod(id)
	if !ok {
		t.Fatal("B should inherit A's class-side make")
	}
	if entry.Owner != a {
		t.Errorf("Owner = %v, want A", entry.Owner)
	}
}
