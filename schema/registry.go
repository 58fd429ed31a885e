package schema

import (
	"fmt"
	"sync"
)

// Registry maps construct keywords to codec factories. Polymorphic
// child positions (a board's graphic items, a footprint's drawables)
// dispatch through one of these instead of inspecting runtime types.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]func() Codec
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]func() Codec),
	}
}

// Register binds keyword to a factory. Registering a keyword twice is
// a programming error.
func (r *Registry) Register(keyword string, f func() Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if keyword == "" {
		return fmt.Errorf("registry: empty keyword")
	}
	if _, exists := r.factories[keyword]; exists {
		return fmt.Errorf("registry: %q already registered", keyword)
	}
	r.factories[keyword] = f
	return nil
}

// MustRegister is Register for package init time.
func (r *Registry) MustRegister(keyword string, f func() Codec) {
	if err := r.Register(keyword, f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory for keyword.
func (r *Registry) Lookup(keyword string) (func() Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[keyword]
	return f, ok
}

// New builds a fresh codec for keyword, reporting whether the keyword
// is known. Unknown keywords are not an error at this level: callers
// route them to the extras bucket.
func (r *Registry) New(keyword string) (Codec, bool) {
	f, ok := r.Lookup(keyword)
	if !ok {
		return nil, false
	}
	return f(), true
}
