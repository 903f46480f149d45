package vm

// Instance is a heap object: a class pointer plus a slot vector. Slot
// order and indices are fixed by the owning Class's AllSlots at creation
// time; adding a parent to a class after instances exist does not resize
// those instances. There is no live schema migration.
type Instance struct {
	Class *Class
	Slots []Value
}

// NewInstance allocates an Instance of class c with all slots nil.
func NewInstance(c *Class) *Instance {
	inst := &Instance{Class: c, Slots: make([]Value, len(c.AllSlots))}
	for i := range inst.Slots {
		inst.Slots[i] = Nil
	}
	return inst
}

// SlotIndex returns the index of slot name in this instance's class, or
// -1 if there is no such slot.
func (inst *Instance) SlotIndex(name string) int {
	return inst.Class.SlotIndex(name)
}

// GetSlot reads slot name, returning Nil if the slot does not exist.
func (inst *Instance) GetSlot(name string) Value {
	idx := inst.SlotIndex(name)
	if idx < 0 {
		return Nil
	}
	return inst.Slots[idx]
}

// SetSlot writes slot name. It is a no-op if the slot does not exist.
func (inst *Instance) SetSlot(name string, v Value) {
	idx := inst.SlotIndex(name)
	if idx < 0 {
		return
	}
	inst.Slots[idx] = v
}
