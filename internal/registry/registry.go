// Package registry maps class names to constructors so observers can be
// created from names found in configuration without reflection.
//
// Registration normally happens at startup:
//
//	reg := registry.New()
//	registry.MustRegister(reg, "Mailer", func(args ...any) (any, error) {
//		return &Mailer{}, nil
//	})
//
// A registry can be sealed once the process is wired to reject late
// registrations.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Constructor builds a new instance from positional arguments.
// Constructors must be safe to call concurrently.
type Constructor func(args ...any) (any, error)

var (
	// ErrUnknown indicates a lookup or build for an unregistered class.
	ErrUnknown = errors.New("registry: unknown class")
	// ErrDuplicate indicates an attempt to register a class twice.
	ErrDuplicate = errors.New("registry: duplicate registration")
	// ErrSealed indicates an attempt to register in a sealed registry.
	ErrSealed = errors.New("registry: sealed registry")
	// ErrInvalid indicates an empty class name or nil constructor.
	ErrInvalid = errors.New("registry: invalid class name or constructor")
)

// Registry is a name -> Constructor table. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	ctors  map[string]Constructor
	sealed atomic.Bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor under name.
func (r *Registry) Register(name string, ctor Constructor) error {
	if r.Sealed() {
		return fmt.Errorf("%w: %s", ErrSealed, name)
	}
	if name == "" || ctor == nil {
		return ErrInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ctors[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.ctors[name] = ctor
	return nil
}

// MustRegister panics on registration error. Useful from init() blocks.
func MustRegister(r *Registry, name string, ctor Constructor) {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
}

// Lookup returns the constructor registered under name.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	ctor, ok := r.ctors[name]
	r.mu.RUnlock()
	return ctor, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Build constructs a new instance of name. Returns ErrUnknown when nothing is
// registered under name; constructor errors are returned unchanged.
func (r *Registry) Build(name string, args ...any) (any, error) {
	ctor, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return ctor(args...)
}

// Names returns all registered class names in lexicographic order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Seal prevents further registrations. Returns true if this call sealed it.
func (r *Registry) Seal() bool { return !r.sealed.Swap(true) }

// Sealed reports whether the registry rejects registrations.
func (r *Registry) Sealed() bool { return r.sealed.Load() }
