package naming

import (
	"strings"
	"sync"
)

// Resolver maps user input (an id, a display name, or a loosely typed name)
// to a registered item id.
type Resolver interface {
	// Resolve returns the id for input and whether it was found
	Resolve(input string) (id string, ok bool)

	// RegisterItem registers an item for resolution
	RegisterItem(id, name string)

	// Reset forgets all registered items
	Reset()
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: id -> id
	ids map[string]string

	// Mapping: lowercased name -> id
	names map[string]string
}

// NewResolver creates an empty resolver
func NewResolver() Resolver {
	return &resolver{
		ids:   make(map[string]string),
		names: make(map[string]string),
	}
}

func (r *resolver) RegisterItem(id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ids[id] = id
	if name != "" {
		r.names[strings.ToLower(strings.TrimSpace(name))] = id
	}
}

func (r *resolver) Resolve(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := r.ids[input]; ok {
		return id, true
	}
	if id, ok := r.names[strings.ToLower(input)]; ok {
		return id, true
	}
	if id, ok := r.ids[DeriveID(input)]; ok {
		return id, true
	}
	return "", false
}

func (r *resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ids = make(map[string]string)
	r.names = make(map[string]string)
}
