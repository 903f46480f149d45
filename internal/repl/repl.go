// Package repl implements an interactive read-eval-print loop: read one
// logical statement (balanced brackets, terminated by a trailing period
// or a blank line), evaluate it against a running VM, print the
// result's default string form, and loop. ':quit' exits; ':help' prints
// a short banner.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nemo-lang/nemo/compiler"
	"github.com/nemo-lang/nemo/vm"
)

const banner = `Nemo REPL. Enter an expression and end it with a period or a blank
line to evaluate it.
  :help   show this message
  :quit   exit
`

// REPL drives one interactive session against a VM, reading from in and
// writing prompts and results to out.
type REPL struct {
	VM      *vm.VM
	Interp  *vm.Interpreter
	Proc    *vm.Process
	in      *bufio.Scanner
	out     io.Writer
	prompt  string
	contPrompt string
}

// New creates a REPL that evaluates against v. All of its top-level
// statements run on one Process, created on first use and kept for the
// session, so on:do: and other signal-bearing constructs work as they do
// in a script. That Process is not driven by the scheduler, and the REPL
// never runs the scheduler: processes created with fork: are queued but
// never given a turn.
func New(v *vm.VM, in io.Reader, out io.Writer) *REPL {
	interp := vm.NewInterpreter(v)
	return &REPL{
		VM:         v,
		Interp:     interp,
		in:         bufio.NewScanner(in),
		out:        out,
		prompt:     "nemo> ",
		contPrompt: "  ... ",
	}
}

// Run reads and evaluates statements until EOF or ':quit'.
func (r *REPL) Run() {
	var buf strings.Builder
	fmt.Fprint(r.out, r.prompt)
	for r.in.Scan() {
		line := r.in.Text()

		if buf.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			switch trimmed {
			case ":quit", ":q":
				return
			case ":help", ":?":
				fmt.Fprint(r.out, banner)
				fmt.Fprint(r.out, r.prompt)
				continue
			case "":
				fmt.Fprint(r.out, r.prompt)
				continue
			}
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)

		src := buf.String()
		// A blank line ends the statement only once its brackets balance
		// (and no string is left open): src plus a period is then complete.
		if (line == "" && IsComplete(src+".")) || IsComplete(src) {
			stmt := strings.TrimSpace(src)
			buf.Reset()
			if stmt != "" {
				r.evalAndPrint(stmt)
			}
			fmt.Fprint(r.out, r.prompt)
			continue
		}
		fmt.Fprint(r.out, r.contPrompt)
	}
	fmt.Fprintln(r.out)
}

// evalAndPrint parses and runs one top-level statement sequence and
// prints its value, or a diagnostic if it failed to parse or raised an
// uncaught exception.
func (r *REPL) evalAndPrint(source string) {
	prog, err := compiler.Parse(source)
	if err != nil {
		fmt.Fprintf(r.out, "parse error: %v\n", err)
		return
	}
	if r.Proc == nil {
		r.Proc = &vm.Process{}
	}
	val, sig := r.Interp.RunTopLevel(r.Proc, prog)
	if sig != nil {
		if sig.Kind == vm.SigUnhandled {
			fmt.Fprintf(r.out, "error: %s: %s\n", sig.Exc.Class.Name, sig.Exc.GetSlot("messageText").PrintString())
			return
		}
		fmt.Fprintf(r.out, "error: unexpected control signal escaped to top level\n")
		return
	}
	fmt.Fprintln(r.out, val.PrintString())
}

// IsComplete reports whether source is a syntactically complete
// statement: balanced brackets and a trailing period (or more closing
// brackets than opening ones, which no further input could repair). It
// tokenizes with the real lexer so brackets inside string literals and
// line comments are never miscounted.
func IsComplete(source string) bool {
	toks, err := compiler.NewLexer(source).Tokenize()
	if err != nil {
		// An unterminated string (or other lex error) always means more
		// input is needed; the source cannot yet be complete.
		return false
	}

	depth := 0
	sawToken := false
	lastSignificant := compiler.TokenEOF
	for _, tok := range toks {
		switch tok.Kind {
		case compiler.TokenEOF:
			continue
		case compiler.TokenNewline:
			continue
		case compiler.TokenLBracket, compiler.TokenLParen, compiler.TokenLBrace, compiler.TokenHashParen:
			depth++
		case compiler.TokenRBracket, compiler.TokenRParen, compiler.TokenRBrace:
			depth--
		}
		sawToken = true
		lastSignificant = tok.Kind
	}

	if depth > 0 {
		return false
	}
	if !sawToken {
		return false
	}
	if depth < 0 {
		// More closes than opens: malformed, but waiting for further
		// input would never fix it. Let the parser report the error.
		return true
	}
	return lastSignificant == compiler.TokenPeriod
}
