package diagnostic

import (
	"strings"
	"testing"

	"github.com/nemo-lang/nemo/vm"
)

func fakeUncaughtProcess() *vm.Process {
	object := vm.NewClass("Object")
	excClass := vm.Derive("DivisionByZero", []*vm.Class{object}, []string{"messageText"})
	inst := vm.NewInstance(excClass)
	inst.SetSlot("messageText", vm.StringValue("division by zero"))

	proc := &vm.Process{
		UncaughtError: inst,
		UncaughtFrames: []vm.StackEntry{
			{Selector: "sum", ReceiverClass: "Point"},
			{Selector: "/", ReceiverClass: "Integer"},
		},
	}
	return proc
}

func TestFromProcessReversesToInnermostFirst(t *testing.T) {
	report := FromProcess(fakeUncaughtProcess())
	if report == nil {
		t.Fatal("expected a non-nil report")
	}
	if report.ExceptionClass != "DivisionByZero" {
		t.Errorf("exception class = %q, want DivisionByZero", report.ExceptionClass)
	}
	if report.MessageText != "division by zero" {
		t.Errorf("message text = %q, want %q", report.MessageText, "division by zero")
	}
	if len(report.Frames) != 2 {
		t.Fatalf("frames = %v, want 2 entries", report.Frames)
	}
	if report.Frames[0].Selector != "/" || report.Frames[1].Selector != "sum" {
		t.Errorf("frames not reversed to innermost-first: %+v", report.Frames)
	}
}

func TestFromProcessNilWhenNoError(t *testing.T) {
	proc := &vm.Process{}
	if got := FromProcess(proc); got != nil {
		t.Errorf("expected nil report for a clean process, got %+v", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	report := FromProcess(fakeUncaughtProcess())
	data, err := Marshal(report)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.ExceptionClass != report.ExceptionClass || got.MessageText != report.MessageText {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, report)
	}
	if len(got.Frames) != len(report.Frames) {
		t.Errorf("round trip frame count = %d, want %d", len(got.Frames), len(report.Frames))
	}
}

func TestStringFormat(t *testing.T) {
	report := FromProcess(fakeUncaughtProcess())
	s := report.String()
	if !strings.HasPrefix(s, "DivisionByZero: division by zero\n") {
		t.Errorf("String() header = %q", s)
	}
	if !strings.Contains(s, "  at Integer>>/\n") {
		t.Errorf("String() missing innermost frame: %q", s)
	}
}
