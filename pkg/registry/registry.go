package registry

import (
	"fmt"

	"github.com/polyroute/polyroute/pkg/transport"
)

// Registry holds every known location in a fixed order. The order is the
// indexing contract for the distance matrices, so it never changes after
// construction and lookups are exact, case-sensitive matches.
type Registry struct {
	locations []transport.Location
	index     map[string]int
}

func New(locations []transport.Location) (*Registry, error) {
	r := &Registry{
		locations: make([]transport.Location, len(locations)),
		index:     map[string]int{},
	}
	copy(r.locations, locations)

	for i, location := range r.locations {
		if _, exists := r.index[location.Name]; exists {
			return nil, fmt.Errorf("duplicate location %q in registry", location.Name)
		}
		r.index[location.Name] = i
	}

	return r, nil
}

func (r *Registry) Len() int {
	return len(r.locations)
}

// At returns the location at matrix index i.
func (r *Registry) At(i int) transport.Location {
	return r.locations[i]
}

func (r *Registry) Get(name string) (transport.Location, bool) {
	i, exists := r.index[name]
	if !exists {
		return transport.Location{}, false
	}

	return r.locations[i], true
}

func (r *Registry) IndexOf(name string) (int, bool) {
	i, exists := r.index[name]

	return i, exists
}

// Names returns the location names in matrix-index order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.locations))
	for i, location := range r.locations {
		names[i] = location.Name
	}

	return names
}
