package vm

// Frame is one lexical activation: either a method activation (Method
// non-nil) or a block activation nested inside one. Temps and parameters
// live in Vars; a lookup that misses walks Parent, giving blocks access
// to the temps of their enclosing method or block.
type Frame struct {
	Parent   *Frame
	Home     *Frame // the method activation that owns this lexical chain
	Receiver Value
	Method   *CompiledMethod // nil for block and top-level frames
	DefiningClass *Class     // class whose method is executing, for super sends
	Vars     map[string]Value
	Dead     bool // true once Home's method call has returned
}

// NewMethodFrame creates the activation for a compiled method invocation.
func NewMethodFrame(receiver Value, method *CompiledMethod, class *Class) *Frame {
	f := &Frame{
		Receiver:      receiver,
		Method:        method,
		DefiningClass: class,
		Vars:          make(map[string]Value),
	}
	f.Home = f
	return f
}

// NewTopLevelFrame creates the activation for evaluating top-level
// script statements: no receiver, no defining class, its own Home.
func NewTopLevelFrame() *Frame {
	f := &Frame{Vars: make(map[string]Value)}
	f.Home = f
	return f
}

// NewBlockFrame creates a nested activation for evaluating a block body,
// sharing Home and Receiver with the lexically enclosing frame.
func NewBlockFrame(parent *Frame) *Frame {
	return &Frame{
		Parent:        parent,
		Home:          parent.Home,
		Receiver:      parent.Receiver,
		DefiningClass: parent.DefiningClass,
		Vars:          make(map[string]Value),
	}
}

// Lookup finds a lexically visible variable, walking outward through
// Parent frames.
func (f *Frame) Lookup(name string) (Value, bool) {
	for cur := f; cur != nil; cur = cur.Parent {
		if v, ok := cur.Vars[name]; ok {
			return v, true
		}
	}
	return Nil, false
}

// Assign sets an existing lexically visible variable and reports whether
// one was found. Callers fall back to instance-slot or global assignment
// when this returns false.
func (f *Frame) Assign(name string, v Value) bool {
	for cur := f; cur != nil; cur = cur.Parent {
		if _, ok := cur.Vars[name]; ok {
			cur.Vars[name] = v
			return true
		}
	}
	return false
}

// Declare introduces name as a new local (a method/block parameter or
// temp) in this frame.
func (f *Frame) Declare(name string, v Value) {
	f.Vars[name] = v
}
