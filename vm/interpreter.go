package vm

import "github.com/nemo-lang/nemo/compiler"

// Interpreter tree-walks parsed AST nodes against a VM. It carries no
// per-call state of its own: all activation state, including the
// recursion depth used for StackOverflow detection (Process.Depth),
// lives in Frames and Processes so the same Interpreter safely drives
// every Process the scheduler runs.
type Interpreter struct {
	VM *VM
}

// NewInterpreter creates an Interpreter over vm.
func NewInterpreter(vm *VM) *Interpreter {
	return &Interpreter{VM: vm}
}

// RunTopLevel evaluates prog's statements in order inside a fresh
// top-level frame (Receiver = nil, no defining class), returning the
// value of the last statement. It is the entry point used by -e
// expressions and the REPL; a script file instead runs as a top-level
// block forked onto the scheduler.
func (interp *Interpreter) RunTopLevel(proc *Process, prog *compiler.TopLevelSequence) (Value, *Signal) {
	frame := NewTopLevelFrame()
	return interp.ExecStatements(frame, proc, prog.Statements)
}

// ExecStatements runs stmts in sequence within frame, short-circuiting
// on the first non-nil Signal. The returned Value is the last
// statement's value when execution completes normally; callers that
// need method-default-returns-self semantics ignore it in that case.
func (interp *Interpreter) ExecStatements(frame *Frame, proc *Process, stmts []compiler.Stmt) (Value, *Signal) {
	var last Value = Nil
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *compiler.ReturnStmt:
			v, sig := interp.Eval(frame, proc, s.Value)
			if sig != nil {
				return Nil, sig
			}
			if frame.Home.Dead {
				return interp.signalError(proc, interp.VM.BlockContextExpiredClass, "return from a dead method activation")
			}
			return Nil, &Signal{Kind: SigMethodReturn, Home: frame.Home, Value: v}
		case *compiler.ExprStmt:
			v, sig := interp.Eval(frame, proc, s.Value)
			if sig != nil {
				return Nil, sig
			}
			last = v
		default:
			last = Nil
		}
	}
	return last, nil
}

// Eval evaluates a single expression node within frame.
func (interp *Interpreter) Eval(frame *Frame, proc *Process, node compiler.Expr) (Value, *Signal) {
	switch n := node.(type) {
	case *compiler.Literal:
		return interp.evalLiteral(n), nil
	case *compiler.Identifier:
		return interp.evalIdentifier(frame, proc, n.Name)
	case *compiler.Assign:
		return interp.evalAssign(frame, proc, n)
	case *compiler.MessageSend:
		return interp.evalMessageSend(frame, proc, n)
	case *compiler.Cascade:
		return interp.evalCascade(frame, proc, n)
	case *compiler.Block:
		return BlockValue(NewBlock(n, frame)), nil
	case *compiler.ArrayLiteral:
		return interp.evalArrayLiteral(n), nil
	case *compiler.TableLiteral:
		return interp.evalTableLiteral(frame, proc, n)
	case *compiler.MethodDefinition:
		return interp.evalMethodDefinition(frame, proc, n)
	case *compiler.ClassDerive:
		return interp.evalClassDerive(frame, proc, n, "AnonymousClass")
	default:
		return Nil, nil
	}
}

func (interp *Interpreter) evalLiteral(lit *compiler.Literal) Value {
	switch lit.Kind {
	case compiler.TokenInteger:
		n, err := compiler.ParseIntLiteral(lit.Text)
		if err != nil {
			return Nil
		}
		return IntValue(n)
	case compiler.TokenFloat:
		f, err := compiler.ParseFloatLiteral(lit.Text)
		if err != nil {
			return Nil
		}
		return FloatValue(f)
	case compiler.TokenString:
		return StringValue(lit.Text)
	case compiler.TokenSymbol:
		return interp.VM.Symbols.Intern(lit.Text)
	case compiler.TokenIdentifier:
		switch lit.Text {
		case "nil":
			return Nil
		case "true":
			return True
		case "false":
			return False
		}
	}
	return Nil
}

// evalIdentifier resolves a bare name in order: lexical frame chain,
// then instance slot of self, then the global namespace. An unresolved
// lowercase name evaluates to nil, tolerating references made before
// assignment; an unresolved uppercase name has no such local/slot
// fallback available (uppercase names are always meant as globals), so
// it signals NameError instead.
func (interp *Interpreter) evalIdentifier(frame *Frame, proc *Process, name string) (Value, *Signal) {
	if name == "self" || name == "super" {
		return frame.Receiver, nil
	}
	if v, ok := frame.Lookup(name); ok {
		return v, nil
	}
	if frame.Receiver.IsInstance() {
		inst := frame.Receiver.AsInstance()
		if idx := inst.SlotIndex(name); idx >= 0 {
			return inst.Slots[idx], nil
		}
	}
	if v, ok := interp.VM.Globals.Get(name); ok {
		return v, nil
	}
	if isUpperIdentifier(name) {
		return interp.signalError(proc, interp.VM.NameErrorClass, "unbound identifier: "+name)
	}
	return Nil, nil
}

func isUpperIdentifier(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return c >= 'A' && c <= 'Z'
}

func (interp *Interpreter) setVar(frame *Frame, name string, val Value) {
	if frame.Assign(name, val) {
		return
	}
	if frame.Receiver.IsInstance() {
		inst := frame.Receiver.AsInstance()
		if idx := inst.SlotIndex(name); idx >= 0 {
			inst.Slots[idx] = val
			return
		}
	}
	interp.VM.Globals.Set(name, val)
}

func (interp *Interpreter) evalAssign(frame *Frame, proc *Process, n *compiler.Assign) (Value, *Signal) {
	if cd, ok := n.Value.(*compiler.ClassDerive); ok {
		val, sig := interp.evalClassDerive(frame, proc, cd, n.Name)
		if sig != nil {
			return Nil, sig
		}
		interp.setVar(frame, n.Name, val)
		return val, nil
	}
	val, sig := interp.Eval(frame, proc, n.Value)
	if sig != nil {
		return Nil, sig
	}
	interp.setVar(frame, n.Name, val)
	return val, nil
}

func (interp *Interpreter) evalClassDerive(frame *Frame, proc *Process, n *compiler.ClassDerive, name string) (Value, *Signal) {
	superVal, sig := interp.Eval(frame, proc, n.Superclass)
	if sig != nil {
		return Nil, sig
	}
	if !superVal.IsClass() {
		return interp.signalError(proc, interp.VM.TypeErrorClass, "derive: sent to a non-Class superclass")
	}
	cls := Derive(name, []*Class{superVal.AsClass()}, n.SlotNames)
	return ClassValue(cls), nil
}

func (interp *Interpreter) evalMethodDefinition(frame *Frame, proc *Process, n *compiler.MethodDefinition) (Value, *Signal) {
	targetVal, sig := interp.Eval(frame, proc, n.TargetClass)
	if sig != nil {
		return Nil, sig
	}
	if !targetVal.IsClass() {
		return interp.signalError(proc, interp.VM.TypeErrorClass, "method defined on a non-Class receiver")
	}
	cls := targetVal.AsClass()
	cm := &CompiledMethod{
		SelectorName: n.Selector,
		DefinedOn:    cls,
		Params:       append([]string{}, n.Body.Params...),
		Temps:        append([]string{}, n.Body.Temps...),
		Body:         n.Body.Statements,
	}
	cls.AddCompiledMethod(interp.VM.Selectors, cm, n.IsClassMethod)
	return interp.VM.Symbols.Intern(n.Selector), nil
}

func (interp *Interpreter) evalArrayLiteral(n *compiler.ArrayLiteral) Value {
	elems := make([]Value, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = interp.arrayElementValue(e)
	}
	return ArrayValue(elems)
}

// arrayElementValue converts the AST produced by the array-literal
// grammar (bare literals and nested #(...) only) directly to a Value
// without going through the general evaluator, since array-literal
// contents are data, not expressions to run.
func (interp *Interpreter) arrayElementValue(e compiler.Expr) Value {
	switch v := e.(type) {
	case *compiler.Literal:
		return interp.evalLiteral(v)
	case *compiler.ArrayLiteral:
		return interp.evalArrayLiteral(v)
	default:
		return Nil
	}
}

func (interp *Interpreter) evalTableLiteral(frame *Frame, proc *Process, n *compiler.TableLiteral) (Value, *Signal) {
	tbl := NewTableVal()
	for _, pair := range n.Pairs {
		v, sig := interp.Eval(frame, proc, pair.Value)
		if sig != nil {
			return Nil, sig
		}
		tbl.Set(pair.Key, v)
	}
	return TableValue(tbl), nil
}

func (interp *Interpreter) evalCascade(frame *Frame, proc *Process, n *compiler.Cascade) (Value, *Signal) {
	recv, sig := interp.Eval(frame, proc, n.Receiver)
	if sig != nil {
		return Nil, sig
	}
	var result Value = recv
	for _, msg := range n.Messages {
		args := make([]Value, len(msg.Args))
		for i, a := range msg.Args {
			v, sig := interp.Eval(frame, proc, a)
			if sig != nil {
				return Nil, sig
			}
			args[i] = v
		}
		v, sig := interp.send(frame, proc, recv, msg.Selector, args)
		if sig != nil {
			return Nil, sig
		}
		result = v
	}
	return result, nil
}

func (interp *Interpreter) evalMessageSend(frame *Frame, proc *Process, n *compiler.MessageSend) (Value, *Signal) {
	recv, sig := interp.Eval(frame, proc, n.Receiver)
	if sig != nil {
		return Nil, sig
	}
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, sig := interp.Eval(frame, proc, a)
		if sig != nil {
			return Nil, sig
		}
		args[i] = v
	}
	return interp.sendFrom(frame, proc, recv, n.Selector, args, n.Super, n.SuperClass)
}

// CallBlockArgs invokes block with args, enforcing arity and honoring
// non-local returns and BlockContextExpired.
func (interp *Interpreter) CallBlockArgs(proc *Process, block *Block, args []Value) (Value, *Signal) {
	if len(args) != len(block.Params) {
		return interp.signalError(proc, interp.VM.WrongBlockArityClass, "wrong number of block arguments")
	}
	bf := NewBlockFrame(block.Home)
	for i, p := range block.Params {
		bf.Declare(p, args[i])
	}
	for _, t := range block.Temps {
		bf.Declare(t, Nil)
	}
	return interp.ExecStatements(bf, proc, block.Body)
}
