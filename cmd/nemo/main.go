// Command nemo is the CLI front end for the Nemo language: with no
// arguments it starts an interactive REPL, with a script path it loads
// and runs that script, and -e evaluates a single expression.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nemo-lang/nemo/compiler"
	"github.com/nemo-lang/nemo/internal/diagnostic"
	"github.com/nemo-lang/nemo/internal/manifest"
	"github.com/nemo-lang/nemo/internal/repl"
	"github.com/nemo-lang/nemo/vm"
)

// exit codes: 0 success, 1 parse-or-runtime error, 2 bad usage.
const (
	exitOK       = 0
	exitRuntime  = 1
	exitBadUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("nemo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	expr := fs.String("e", "", "evaluate this expression and print its result, then exit")
	dumpAST := fs.Bool("ast", false, "dump the parsed AST before executing")
	verbose := fs.Bool("v", false, "verbose diagnostic output")
	home := fs.String("home", "", "library search path (overrides NEMO_HOME and nemo.toml)")
	bootstrap := fs.String("bootstrap", "", "bootstrap source file to load before the program")
	stackDepth := fs.Int("stack-depth", 0, "maximum activation depth (default 10000)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nemo [options] [script]\n\n")
		fmt.Fprintf(os.Stderr, "Starts an interactive REPL if no script is given, otherwise loads and runs it.\n")
		fmt.Fprintf(os.Stderr, "NEMO_HOME sets the default library search path.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nemo                    # start the REPL\n")
		fmt.Fprintf(os.Stderr, "  nemo script.nemo        # run a script\n")
		fmt.Fprintf(os.Stderr, "  nemo -e '3 + 4'         # evaluate one expression\n")
	}

	if err := fs.Parse(args); err != nil {
		return exitBadUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "nemo: unexpected extra argument %q\n", fs.Arg(1))
		fs.Usage()
		return exitBadUsage
	}

	man, err := manifest.FindAndLoad(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "nemo: error loading nemo.toml: %v\n", err)
		return exitRuntime
	}
	if *verbose && man != nil {
		fmt.Fprintf(os.Stderr, "nemo: loaded manifest from %s\n", man.Dir)
	}

	v := vm.NewVM()
	depth := *stackDepth
	if depth == 0 && man != nil {
		depth = man.Runtime.StackDepth
	}
	if depth != 0 {
		v.StackDepthLimit = depth
	}
	vm.Bootstrap(v)

	if bootPath := man.BootstrapPath(*bootstrap); bootPath != "" {
		if *verbose {
			fmt.Fprintf(os.Stderr, "nemo: loading bootstrap %s\n", bootPath)
		}
		if err := runFile(v, bootPath, *dumpAST); err != nil {
			fmt.Fprintf(os.Stderr, "nemo: %v\n", err)
			return exitRuntime
		}
	}

	libHome := man.HomePath(*home, os.Getenv("NEMO_HOME"))
	if *verbose && libHome != "" {
		fmt.Fprintf(os.Stderr, "nemo: library home %s\n", libHome)
	}

	switch {
	case *expr != "":
		return runExpr(v, *expr, *dumpAST)
	case fs.NArg() == 1:
		if err := runFile(v, fs.Arg(0), *dumpAST); err != nil {
			fmt.Fprintf(os.Stderr, "nemo: %v\n", err)
			return exitRuntime
		}
		return exitOK
	default:
		r := repl.New(v, os.Stdin, os.Stdout)
		r.Run()
		return exitOK
	}
}

// runExpr evaluates a single expression given on the command line,
// printing its result and returning the process exit code.
func runExpr(v *vm.VM, expr string, dumpAST bool) int {
	prog, err := compiler.Parse(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nemo: parse error: %v\n", err)
		return exitRuntime
	}
	if dumpAST {
		dumpProgram(prog)
	}
	interp := vm.NewInterpreter(v)
	proc := &vm.Process{}
	val, sig := interp.RunTopLevel(proc, prog)
	if sig != nil {
		proc.UncaughtError = sig.Exc
		proc.UncaughtFrames = sig.Frames
		return reportSignal(proc, sig)
	}
	fmt.Println(val.PrintString())
	return exitOK
}

// runFile loads and runs a script file to completion on the scheduler,
// letting it fork additional processes as it pleases.
func runFile(v *vm.VM, path string, dumpAST bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	prog, err := compiler.Parse(string(src))
	if err != nil {
		return &vm.RuntimeError{Kind: "ParseError", Message: err.Error()}
	}
	if dumpAST {
		dumpProgram(prog)
	}

	interp := vm.NewInterpreter(v)
	block := topLevelBlock(prog)
	proc := v.Scheduler.Fork(interp, block, nil)
	v.Scheduler.RunToCompletion()

	if proc.UncaughtError != nil {
		report := diagnostic.FromProcess(proc)
		fmt.Fprint(os.Stderr, report.String())
		return &vm.RuntimeError{Kind: proc.UncaughtError.Class.Name, Message: proc.UncaughtError.GetSlot("messageText").PrintString()}
	}
	return nil
}

// topLevelBlock wraps a parsed program's statements as a zero-argument
// Block so a script's top level can run as a forked Process exactly the
// way Processor fork: runs one, rather than needing a second execution
// path.
func topLevelBlock(prog *compiler.TopLevelSequence) *vm.Block {
	frame := vm.NewTopLevelFrame()
	return vm.NewTopLevelBlock(prog.Statements, frame)
}

func reportSignal(proc *vm.Process, sig *vm.Signal) int {
	if sig.Kind == vm.SigUnhandled {
		report := diagnostic.FromProcess(proc)
		fmt.Fprint(os.Stderr, report.String())
		return exitRuntime
	}
	fmt.Fprintf(os.Stderr, "nemo: unexpected control signal escaped to top level\n")
	return exitRuntime
}

func dumpProgram(prog *compiler.TopLevelSequence) {
	fmt.Fprintf(os.Stderr, "--- AST (%d statements) ---\n", len(prog.Statements))
	for _, stmt := range prog.Statements {
		fmt.Fprintf(os.Stderr, "%#v\n", stmt)
	}
	fmt.Fprintln(os.Stderr, "--- end AST ---")
}
