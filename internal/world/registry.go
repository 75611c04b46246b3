package world

import "fmt"

// Registry is the set of obstacles registered at world-build time.
// Entries are never removed individually; Clear is for full rebuilds.
type Registry struct {
	obstacles []Obstacle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends an obstacle after validating it.
func (r *Registry) Register(o Obstacle) error {
	if err := o.Validate(); err != nil {
		return err
	}
	r.obstacles = append(r.obstacles, o)
	return nil
}

// MustRegister registers an obstacle and panics if it is invalid.
func (r *Registry) MustRegister(o Obstacle) {
	if err := r.Register(o); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// Clear removes every obstacle.
func (r *Registry) Clear() {
	r.obstacles = r.obstacles[:0]
}

// All returns a copy of the registered obstacles.
func (r *Registry) All() []Obstacle {
	out := make([]Obstacle, len(r.obstacles))
	copy(out, r.obstacles)
	return out
}

// Len returns the number of registered obstacles.
func (r *Registry) Len() int {
	return len(r.obstacles)
}
