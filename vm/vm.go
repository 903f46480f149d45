package vm

import (
	"io"
	"os"
)

// VM ties together the interned tables, the well-known base classes, the
// global namespace, and the scheduler that every Process runs under.
type VM struct {
	Symbols   *SymbolTable
	Selectors *SelectorTable
	Globals   *Globals
	Scheduler *Scheduler

	// Stdout receives output from println/printNl. Defaults to os.Stdout;
	// tests and embedders may swap it for a buffer.
	Stdout io.Writer

	StackDepthLimit int

	ObjectClass    *Class
	BooleanClass   *Class
	TrueClass      *Class
	FalseClass     *Class
	NumberClass    *Class
	IntegerClass   *Class
	FloatClass     *Class
	StringClass    *Class
	SymbolClass    *Class
	ArrayClass     *Class
	TableClass     *Class
	BlockClass     *Class
	NilClass       *Class
	ClassClass     *Class
	ExceptionClass *Class
	ErrorClass     *Class
	MessageNotUnderstoodClass *Class
	AmbiguousMethodClass      *Class
	SubscriptOutOfBoundsClass *Class
	DivisionByZeroClass       *Class
	BlockContextExpiredClass  *Class
	StackOverflowClass        *Class
	WrongBlockArityClass      *Class
	ProcessErrorClass         *Class
	ProcessClass    *Class
	SemaphoreClass  *Class
	ChannelClass    *Class
	ArityErrorClass *Class
	NameErrorClass  *Class
	TypeErrorClass  *Class
}

// NewVM allocates a VM with fresh interning tables and an empty
// namespace; call Bootstrap on it to install the base class hierarchy
// and primitives.
func NewVM() *VM {
	return &VM{
		Symbols:         NewSymbolTable(),
		Selectors:       NewSelectorTable(),
		Globals:         NewGlobals(),
		Scheduler:       NewScheduler(),
		Stdout:          os.Stdout,
		StackDepthLimit: 10000,
	}
}

// ClassOf returns the built-in Class that v is a direct instance of, for
// values whose class isn't already carried in the Value (Instance
// carries its own Class pointer).
func (vm *VM) ClassOf(v Value) *Class {
	switch v.Tag() {
	case TagNil:
		return vm.NilClass
	case TagBool:
		if v.IsTrue() {
			return vm.TrueClass
		}
		return vm.FalseClass
	case TagInt:
		return vm.IntegerClass
	case TagFloat:
		return vm.FloatClass
	case TagString:
		return vm.StringClass
	case TagSymbol:
		return vm.SymbolClass
	case TagArray:
		return vm.ArrayClass
	case TagTable:
		return vm.TableClass
	case TagBlock:
		return vm.BlockClass
	case TagClass:
		return vm.ClassClass
	case TagInstance:
		return v.AsInstance().Class
	case TagProcess:
		return vm.ProcessClass
	case TagSemaphore:
		return vm.SemaphoreClass
	case TagChannel:
		return vm.ChannelClass
	default:
		return vm.ObjectClass
	}
}

// NewException allocates an Instance of class with `messageText` set,
// ready to be passed to raiseException or returned as a signal.
func (vm *VM) NewException(class *Class, messageText string) *Instance {
	inst := NewInstance(class)
	inst.SetSlot("messageText", StringValue(messageText))
	return inst
}
