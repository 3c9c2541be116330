package challenge

import (
	"fmt"
	"sort"
)

// Registry maps challenge names to constructors.
type Registry struct {
	challenges map[string]func() Challenge
}

func NewRegistry() *Registry {
	return &Registry{challenges: make(map[string]func() Challenge)}
}

// Register adds a constructor under its challenge's name.
func (r *Registry) Register(name string, fn func() Challenge) {
	r.challenges[name] = fn
}

// Get builds the named challenge.
func (r *Registry) Get(name string) (Challenge, error) {
	fn, ok := r.challenges[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return fn(), nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.challenges))
	for name := range r.challenges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
