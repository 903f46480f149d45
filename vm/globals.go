package vm

import "sync"

// Globals is the shared namespace of top-level bindings: class names,
// user-assigned globals from `Name := ...`, and (in the REPL) session
// variables. Reads and writes are serialized because Process goroutines,
// though only ever one running at a time, may still race with the
// scheduler driver on shutdown.
type Globals struct {
	mu   sync.RWMutex
	vars map[string]Value
}

// NewGlobals creates an empty namespace.
func NewGlobals() *Globals {
	return &Globals{vars: make(map[string]Value)}
}

func (g *Globals) Get(name string) (Value, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vars[name]
	return v, ok
}

func (g *Globals) Set(name string, v Value) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vars[name] = v
}
