package vm

import "testing"

func TestValueTagPredicates(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		is   func(Value) bool
	}{
		{"nil", Nil, Value.IsNil},
		{"int", IntValue(3), Value.IsInt},
		{"float", FloatValue(3.5), Value.IsFloat},
		{"string", StringValue("hi"), Value.IsString},
		{"array", ArrayValue(nil), Value.IsArray},
		{"table", TableValue(NewTableVal()), Value.IsTable},
	}
	for _, c := range cases {
		if !c.is(c.v) {
			t.Errorf("%s: predicate returned false for its own constructor", c.name)
		}
	}
}

func TestIntValueRoundTrip(t *testing.T) {
	v := IntValue(42)
	if !v.IsInt() {
		t.Fatal("expected an Int value")
	}
	if got := v.AsInt(); got != 42 {
		t.Errorf("AsInt() = %d, want 42", got)
	}
}

func TestIdenticalComparesByReferenceForHeapValues(t *testing.T) {
	a := ArrayValue([]Value{IntValue(1)})
	b := ArrayValue([]Value{IntValue(1)})
	if a.Identical(b) {
		t.Error("two distinct Array allocations with equal contents should not be Identical")
	}
	if !a.Identical(a) {
		t.Error("an Array value should be Identical to itself")
	}
}

func TestIdenticalComparesIntsByValue(t *testing.T) {
	if !IntValue(7).Identical(IntValue(7)) {
		t.Error("two Int values holding 7 should be Identical")
	}
	if IntValue(7).Identical(IntValue(8)) {
		t.Error("Int values holding different numbers should not be Identical")
	}
}

func TestPrintStringPrimitives(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{True, "true"},
		{False, "false"},
		{IntValue(5), "5"},
	}
	for _, c := range cases {
		if got := c.v.PrintString(); got != c.want {
			t.Errorf("PrintString() = %q, want %q", got, c.want)
		}
	}
}

func TestTableValGetSet(t *testing.T) {
	tbl := NewTableVal()
	if tbl.Has("a") {
		t.Fatal("empty table should not have key 'a'")
	}
	tbl.Set("a", IntValue(1))
	got, ok := tbl.Get("a")
	if !ok || got.AsInt() != 1 {
		t.Errorf("Get(%q) = %v, %v, want 1, true", "a", got, ok)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}
