package part

import (
	"fmt"
	"sort"
)

// Registry manages part family definitions and lookups.
type Registry struct {
	families map[string]*Family
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]*Family),
	}
}

// Register adds a family. Names must be unique.
func (r *Registry) Register(f *Family) error {
	if f.Name == "" {
		return fmt.Errorf("part family must have a name")
	}
	if _, exists := r.families[f.Name]; exists {
		return fmt.Errorf("part family %q already registered", f.Name)
	}
	if len(f.Variants) == 0 {
		return fmt.Errorf("part family %q has no variants", f.Name)
	}
	r.families[f.Name] = f
	return nil
}

// MustRegister adds a family, panicking on conflict. Used by the catalog
// wiring in cmd where a duplicate is a programming error.
func (r *Registry) MustRegister(f *Family) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Get returns a family by name.
func (r *Registry) Get(name string) (*Family, error) {
	f, exists := r.families[name]
	if !exists {
		return nil, fmt.Errorf("part family %q not found", name)
	}
	return f, nil
}

// List returns all registered family names, sorted for stable run output.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
