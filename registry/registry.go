package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/abcdmku/hornprofiles/profile"
)

// Sentinel errors returned by Registry operations.
var (
	// ErrEmptyName indicates registration under an empty name.
	ErrEmptyName = errors.New("registry: profile name must be non-empty")

	// ErrNilConstructor indicates registration of a nil constructor.
	ErrNilConstructor = errors.New("registry: constructor must be non-nil")

	// ErrDuplicateProfile indicates the name is already registered.
	ErrDuplicateProfile = errors.New("registry: profile name already registered")

	// ErrUnknownProfile indicates a lookup of an unregistered name.
	ErrUnknownProfile = errors.New("registry: unknown profile name")
)

// Constructor builds a fresh generator for one profile family.
type Constructor func() profile.Generator

// Registry is a concurrency-safe name→constructor map. The zero value is
// not usable; construct with New or Default.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Constructor
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byName: make(map[string]Constructor)}
}

// Default returns a fresh registry with the four built-in families
// registered under their Type() names.
func Default() *Registry {
	r := New()
	for _, ctor := range []Constructor{
		func() profile.Generator { return profile.Conical{} },
		func() profile.Generator { return profile.Exponential{} },
		func() profile.Generator { return profile.Spherical{} },
		func() profile.Generator { return profile.Tractrix{} },
	} {
		// Built-in names are unique; Register cannot fail here.
		_ = r.Register(ctor().Type(), ctor)
	}

	return r
}

// Register binds name to the constructor c. Names are case-sensitive.
func (r *Registry) Register(name string, c Constructor) error {
	if name == "" {
		return ErrEmptyName
	}
	if c == nil {
		return ErrNilConstructor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateProfile, name)
	}
	r.byName[name] = c

	return nil
}

// Lookup returns the constructor bound to name.
func (r *Registry) Lookup(name string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	return c, nil
}

// NewGenerator builds a fresh generator for name.
func (r *Registry) NewGenerator(name string) (profile.Generator, error) {
	c, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	return c(), nil
}

// List returns the registered names in ascending order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
