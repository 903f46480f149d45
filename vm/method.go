package vm

import "github.com/nemo-lang/nemo/compiler"

// Method is anything that can be invoked as the result of a dispatch:
// either a CompiledMethod holding a parsed body, or a PrimitiveMethod
// wrapping native Go code.
type Method interface {
	Selector() string
	NumArgs() int
	IsPrimitive() bool
}

// CompiledMethod is a user-defined method, holding its parsed AST body
// and the class it was defined on (needed to resolve plain `super`
// sends from inside it).
type CompiledMethod struct {
	SelectorName string
	DefinedOn    *Class
	Params       []string
	Temps        []string
	Body         []compiler.Stmt
}

func (m *CompiledMethod) Selector() string { return m.SelectorName }
func (m *CompiledMethod) NumArgs() int     { return len(m.Params) }
func (m *CompiledMethod) IsPrimitive() bool { return false }

// PrimitiveFunc implements a primitive method body. It receives the
// interpreter (for recursive sends, e.g. evaluating a block argument),
// the running process (for scheduler primitives), the receiver, and the
// already-evaluated argument list.
type PrimitiveFunc func(interp *Interpreter, proc *Process, receiver Value, args []Value) (Value, *Signal)

// PrimitiveMethod wraps a native Go implementation of a method, mirroring
// how base classes like Integer, String, and Array are bootstrapped.
type PrimitiveMethod struct {
	SelectorName string
	Args         int
	Fn           PrimitiveFunc
}

func (m *PrimitiveMethod) Selector() string  { return m.SelectorName }
func (m *PrimitiveMethod) NumArgs() int      { return m.Args }
func (m *PrimitiveMethod) IsPrimitive() bool { return true }

// NewPrimitive builds a PrimitiveMethod for selector with the given
// arity and implementation.
func NewPrimitive(selector string, numArgs int, fn PrimitiveFunc) *PrimitiveMethod {
	return &PrimitiveMethod{SelectorName: selector, Args: numArgs, Fn: fn}
}

// AddMethod registers a primitive on c's instance side.
func (c *Class) AddMethod(sel *SelectorTable, selector string, numArgs int, fn PrimitiveFunc) {
	id := sel.Intern(selector)
	c.Methods[id] = NewPrimitive(selector, numArgs, fn)
	c.recompute()
}

// AddClassMethod registers a primitive on c's class side (sent when the
// receiver is the Class object itself, e.g. `Point new`).
func (c *Class) AddClassMethod(sel *SelectorTable, selector string, numArgs int, fn PrimitiveFunc) {
	id := sel.Intern(selector)
	c.ClassMethods[id] = NewPrimitive(selector, numArgs, fn)
	c.recompute()
}

// AddCompiledMethod installs a user-defined method parsed from source.
func (c *Class) AddCompiledMethod(sel *SelectorTable, m *CompiledMethod, classSide bool) {
	id := sel.Intern(m.SelectorName)
	if classSide {
		c.ClassMethods[id] = m
	} else {
		c.Methods[id] = m
	}
	c.recompute()
}
