package manifest

import "sync"

// Instruction is an install guide snapshot taken when a manifest is built
type Instruction struct {
	Title string
	Body  string
}

// Registry stores instructions by key for later display. Stored entries are
// never replaced, so a key always resolves to the text captured at build time.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Instruction
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Instruction)}
}

// Put stores inst under key. It reports false and leaves the existing entry
// untouched when key is already taken.
func (r *Registry) Put(key string, inst Instruction) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		return false
	}
	r.entries[key] = inst
	return true
}

// Lookup returns the instruction stored under key
func (r *Registry) Lookup(key string) (Instruction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.entries[key]
	return inst, ok
}

// Len returns the number of stored instructions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
