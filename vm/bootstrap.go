package vm

// Bootstrap builds the base class hierarchy and installs every built-in
// primitive method on it. It must run once before any program is
// evaluated against vm.
func Bootstrap(v *VM) {
	v.ObjectClass = NewClass("Object")

	v.BooleanClass = Derive("Boolean", []*Class{v.ObjectClass}, nil)
	v.TrueClass = Derive("True", []*Class{v.BooleanClass}, nil)
	v.FalseClass = Derive("False", []*Class{v.BooleanClass}, nil)
	v.NilClass = Derive("UndefinedObject", []*Class{v.ObjectClass}, nil)

	v.NumberClass = Derive("Number", []*Class{v.ObjectClass}, nil)
	v.IntegerClass = Derive("Integer", []*Class{v.NumberClass}, nil)
	v.FloatClass = Derive("Float", []*Class{v.NumberClass}, nil)

	v.StringClass = Derive("String", []*Class{v.ObjectClass}, nil)
	v.SymbolClass = Derive("Symbol", []*Class{v.StringClass}, nil)
	v.ArrayClass = Derive("Array", []*Class{v.ObjectClass}, nil)
	v.TableClass = Derive("Table", []*Class{v.ObjectClass}, nil)
	v.BlockClass = Derive("Block", []*Class{v.ObjectClass}, nil)
	v.ClassClass = Derive("Class", []*Class{v.ObjectClass}, nil)

	v.ExceptionClass = Derive("Exception", []*Class{v.ObjectClass}, []string{"messageText"})
	v.ErrorClass = Derive("Error", []*Class{v.ExceptionClass}, nil)
	v.MessageNotUnderstoodClass = Derive("MessageNotUnderstood", []*Class{v.ErrorClass}, nil)
	v.AmbiguousMethodClass = Derive("AmbiguousMethod", []*Class{v.ErrorClass}, nil)
	v.SubscriptOutOfBoundsClass = Derive("SubscriptOutOfBounds", []*Class{v.ErrorClass}, nil)
	v.DivisionByZeroClass = Derive("DivisionByZero", []*Class{v.ErrorClass}, nil)
	v.BlockContextExpiredClass = Derive("BlockContextExpired", []*Class{v.ErrorClass}, nil)
	v.StackOverflowClass = Derive("StackOverflow", []*Class{v.ErrorClass}, nil)
	v.WrongBlockArityClass = Derive("WrongBlockArity", []*Class{v.ErrorClass}, nil)
	v.ProcessErrorClass = Derive("ProcessError", []*Class{v.ErrorClass}, nil)
	v.ArityErrorClass = Derive("ArityError", []*Class{v.ErrorClass}, nil)
	v.NameErrorClass = Derive("NameError", []*Class{v.ErrorClass}, nil)
	v.TypeErrorClass = Derive("TypeError", []*Class{v.ErrorClass}, nil)

	v.ProcessClass = Derive("Process", []*Class{v.ObjectClass}, nil)
	v.SemaphoreClass = Derive("Semaphore", []*Class{v.ObjectClass}, nil)
	v.ChannelClass = Derive("Channel", []*Class{v.ObjectClass}, nil)

	installObjectPrimitives(v)
	installBooleanPrimitives(v)
	installNumberPrimitives(v)
	installStringPrimitives(v)
	installSymbolPrimitives(v)
	installArrayPrimitives(v)
	installTablePrimitives(v)
	installBlockPrimitives(v)
	installClassPrimitives(v)
	installExceptionPrimitives(v)
	installProcessPrimitives(v)

	registerGlobalClasses(v)
}

func registerGlobalClasses(v *VM) {
	classes := []*Class{
		v.ObjectClass, v.BooleanClass, v.TrueClass, v.FalseClass, v.NilClass,
		v.NumberClass, v.IntegerClass, v.FloatClass,
		v.StringClass, v.SymbolClass, v.ArrayClass, v.TableClass, v.BlockClass, v.ClassClass,
		v.ExceptionClass, v.ErrorClass, v.MessageNotUnderstoodClass, v.AmbiguousMethodClass,
		v.SubscriptOutOfBoundsClass, v.DivisionByZeroClass, v.BlockContextExpiredClass,
		v.StackOverflowClass, v.WrongBlockArityClass, v.ProcessErrorClass, v.ArityErrorClass,
		v.NameErrorClass, v.TypeErrorClass,
		v.ProcessClass, v.SemaphoreClass, v.ChannelClass,
	}
	for _, c := range classes {
		v.Globals.Set(c.Name, ClassValue(c))
	}
	// Processor names the scheduler-facing side of Process
	// (fork:/yield/sleep:/current live on Process's class side).
	v.Globals.Set("Processor", ClassValue(v.ProcessClass))
}
