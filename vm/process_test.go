package vm

import "testing"

func TestForkNamedSetsProcessName(t *testing.T) {
	v := newTestVM(t)
	setup := `
seen := Table new.
Process fork: [ seen at: "name" put: Process current name ] named: "worker".
`
	runToCompletion(t, v, setup)
	name := mustEval(t, v, `seen at: "name".`)
	if !name.IsString() || name.AsString() != "worker" {
		t.Errorf("name = %v, want \"worker\"", name.PrintString())
	}
}

func TestPlainForkGeneratesAProcessName(t *testing.T) {
	v := newTestVM(t)
	setup := `
seen := Table new.
Process fork: [ seen at: "name" put: Process current name ].
`
	runToCompletion(t, v, setup)
	name := mustEval(t, v, `seen at: "name".`)
	if !name.IsString() || name.AsString() == "" {
		t.Errorf("name = %v, want a non-empty generated name", name.PrintString())
	}
}

func TestProcessPidIsANonNegativeInteger(t *testing.T) {
	v := newTestVM(t)
	setup := `
seen := Table new.
Process fork: [ seen at: "pid" put: Process current pid ].
`
	runToCompletion(t, v, setup)
	pid := mustEval(t, v, `seen at: "pid".`)
	if !pid.IsInt() || pid.AsInt() < 0 {
		t.Errorf("pid = %v, want a non-negative Integer", pid.PrintString())
	}
}

func TestProcessorAliasResolvesToProcessClass(t *testing.T) {
	v := newTestVM(t)
	val := mustEval(t, v, "Processor == Process.")
	if !val.IsTrue() {
		t.Error("Processor should be the same Class object as Process")
	}
}
