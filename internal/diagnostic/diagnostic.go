// Package diagnostic persists a post-mortem call-stack dump for a
// process that terminated with an unhandled exception: error kind,
// message, and an indented call stack. It captures one frozen trace; it
// is not image persistence and nothing here can be resumed from.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/nemo-lang/nemo/vm"
)

// Frame is one activation in a crash report's call stack.
type Frame struct {
	Selector      string `cbor:"selector"`
	ReceiverClass string `cbor:"receiver_class"`
}

// CrashReport is a structured snapshot of an unhandled exception: its
// class, message, and the call stack live at the moment it went
// unhandled, innermost frame first.
type CrashReport struct {
	ExceptionClass string  `cbor:"exception_class"`
	MessageText    string  `cbor:"message_text"`
	Frames         []Frame `cbor:"frames"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("diagnostic: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// FromProcess builds a CrashReport from a process that has terminated
// with an unhandled exception. It returns nil if proc has none.
func FromProcess(proc *vm.Process) *CrashReport {
	if proc.UncaughtError == nil {
		return nil
	}
	r := &CrashReport{
		ExceptionClass: proc.UncaughtError.Class.Name,
		MessageText:    proc.UncaughtError.GetSlot("messageText").PrintString(),
	}
	frames := proc.UncaughtFrames
	r.Frames = make([]Frame, len(frames))
	for i, f := range frames {
		r.Frames[len(frames)-1-i] = Frame{Selector: f.Selector, ReceiverClass: f.ReceiverClass}
	}
	return r
}

// Marshal serializes a CrashReport to canonical CBOR bytes, suitable
// for writing to a crash file alongside a forked process's exit.
func Marshal(r *CrashReport) ([]byte, error) {
	return cborEncMode.Marshal(r)
}

// Unmarshal deserializes a CrashReport from CBOR bytes.
func Unmarshal(data []byte) (*CrashReport, error) {
	var r CrashReport
	if err := cbor.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("diagnostic: unmarshal crash report: %w", err)
	}
	return &r, nil
}

// String renders the report as an indented call stack, one selector
// per frame with its receiver's class.
func (r *CrashReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", r.ExceptionClass, r.MessageText)
	for _, f := range r.Frames {
		fmt.Fprintf(&b, "  at %s>>%s\n", f.ReceiverClass, f.Selector)
	}
	return b.String()
}
