package vm

// MethodEntry is one resolved entry in a Class's merged method table: the
// method to run, the class that contributed it, and (if more than one
// distinct superclass contributes a same-named method that the receiving
// class does not itself override) the set of classes in conflict.
type MethodEntry struct {
	Method    Method
	Owner     *Class
	Sources   []*Class
	Ambiguous bool
}

// Class is a Nemo class object. Instance creation, dispatch, and slot
// layout all go through the precomputed AllSlots and MergedMethods built
// by recompute(), which is re-run whenever the inheritance graph changes
// via Derive or AddParent.
type Class struct {
	Name         string
	Superclasses []*Class
	subclasses   []*Class

	OwnSlots []string
	AllSlots []string
	slotIdx  map[string]int

	Methods       map[uint32]Method // selector id -> own instance method
	MergedMethods map[uint32]*MethodEntry

	ClassMethods       map[uint32]Method // selector id -> own class-side method
	MergedClassMethods map[uint32]*MethodEntry

	Tags map[string]bool
}

// NewClass creates a root class with no superclasses, e.g. Object.
func NewClass(name string) *Class {
	c := &Class{
		Name:         name,
		Methods:      make(map[uint32]Method),
		ClassMethods: make(map[uint32]Method),
		Tags:         make(map[string]bool),
	}
	c.recompute()
	return c
}

// Derive creates a new subclass of parents (in the order given) with the
// given own slot names. A selector found on more than one distinct
// parent is a conflict regardless of order. A slot name found on more
// than one parent is not reported as a conflict: it is merged silently
// and keeps the position of its first occurrence in parent order.
func Derive(name string, parents []*Class, slotNames []string) *Class {
	c := &Class{
		Name:         name,
		Superclasses: append([]*Class{}, parents...),
		OwnSlots:     append([]string{}, slotNames...),
		Methods:      make(map[uint32]Method),
		ClassMethods: make(map[uint32]Method),
		Tags:         make(map[string]bool),
	}
	for _, p := range parents {
		p.subclasses = append(p.subclasses, c)
	}
	c.recompute()
	return c
}

// AddParent adds an additional superclass to c and recomputes c's
// (and every subclass's) slot layout and merged method table.
func (c *Class) AddParent(parent *Class) {
	for _, existing := range c.Superclasses {
		if existing == parent {
			return
		}
	}
	c.Superclasses = append(c.Superclasses, parent)
	parent.subclasses = append(parent.subclasses, c)
	c.recompute()
}

// AddTag marks c with a class tag, an inheritable label independent of
// the superclass chain used to group classes for capability checks.
func (c *Class) AddTag(tag string) { c.Tags[tag] = true }

// HasTag reports whether tag is set on c or inherited from any ancestor.
func (c *Class) HasTag(tag string) bool {
	if c.Tags[tag] {
		return true
	}
	for _, sup := range c.Superclasses {
		if sup.HasTag(tag) {
			return true
		}
	}
	return false
}

// SlotIndex returns the index of slot name in AllSlots, or -1.
func (c *Class) SlotIndex(name string) int {
	if idx, ok := c.slotIdx[name]; ok {
		return idx
	}
	return -1
}

// IsKindOf reports whether c is other or a transitive subclass of other,
// walking the (possibly diamond-shaped) superclass graph.
func (c *Class) IsKindOf(other *Class) bool {
	if c == other {
		return true
	}
	for _, sup := range c.Superclasses {
		if sup.IsKindOf(other) {
			return true
		}
	}
	return false
}

// LookupMethod resolves selector against c's merged instance method
// table. The bool result is false only if no class in c's ancestry
// defines the selector (a doesNotUnderstand: candidate). An ambiguous
// resolution comes back with ok true and entry.Ambiguous set, and the
// caller must raise AmbiguousMethod.
func (c *Class) LookupMethod(selector uint32) (*MethodEntry, bool) {
	entry, ok := c.MergedMethods[selector]
	return entry, ok
}

// LookupClassMethod resolves selector against c's merged class-side
// method table (sent when the receiver is the Class value itself).
func (c *Class) LookupClassMethod(selector uint32) (*MethodEntry, bool) {
	entry, ok := c.MergedClassMethods[selector]
	return entry, ok
}

// recompute rebuilds AllSlots, slotIdx, MergedMethods, and
// MergedClassMethods from Superclasses and own definitions, then
// propagates to every known subclass. Conflicting slot names from
// distinct superclass branches keep the first one seen in superclass
// order; conflicting methods are marked Ambiguous unless c itself
// overrides the selector.
func (c *Class) recompute() {
	c.AllSlots = nil
	c.slotIdx = make(map[string]int)
	for _, sup := range c.Superclasses {
		for _, slot := range sup.AllSlots {
			if _, seen := c.slotIdx[slot]; seen {
				continue
			}
			c.slotIdx[slot] = len(c.AllSlots)
			c.AllSlots = append(c.AllSlots, slot)
		}
	}
	for _, slot := range c.OwnSlots {
		if _, seen := c.slotIdx[slot]; seen {
			continue
		}
		c.slotIdx[slot] = len(c.AllSlots)
		c.AllSlots = append(c.AllSlots, slot)
	}

	c.MergedMethods = mergeMethods(c.Superclasses, c.Methods, c, false)
	c.MergedClassMethods = mergeMethods(c.Superclasses, c.ClassMethods, c, true)

	for _, sub := range c.subclasses {
		sub.recompute()
	}
}

func mergeMethods(supers []*Class, own map[uint32]Method, owner *Class, classSide bool) map[uint32]*MethodEntry {
	merged := make(map[uint32]*MethodEntry)
	for _, sup := range supers {
		var supTable map[uint32]*MethodEntry
		if classSide {
			supTable = sup.MergedClassMethods
		} else {
			supTable = sup.MergedMethods
		}
		for sel, entry := range supTable {
			if existing, ok := merged[sel]; ok {
				if existing.Owner != entry.Owner {
					existing.Ambiguous = true
					existing.Sources = appendUnique(existing.Sources, entry.Owner)
				}
				continue
			}
			merged[sel] = &MethodEntry{
				Method:    entry.Method,
				Owner:     entry.Owner,
				Sources:   append([]*Class{}, entry.Sources...),
				Ambiguous: entry.Ambiguous,
			}
		}
	}
	for sel, m := range own {
		merged[sel] = &MethodEntry{Method: m, Owner: owner, Sources: []*Class{owner}}
	}
	return merged
}

func appendUnique(list []*Class, c *Class) []*Class {
	for _, existing := range list {
		if existing == c {
			return list
		}
	}
	return append(list, c)
}
