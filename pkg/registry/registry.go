package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/getimpose/impose/pkg/imposter"
)

var (
	// ErrPortInUse is returned when a port already has an imposter.
	ErrPortInUse = errors.New("port already in use")

	// ErrNotFound is returned when no imposter exists on a port.
	ErrNotFound = errors.New("imposter not found")
)

// Registry is a thread-safe port-to-imposter map.
type Registry struct {
	mu        sync.RWMutex
	imposters map[int]*imposter.Imposter
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		imposters: make(map[int]*imposter.Imposter),
	}
}

// Add claims a port for an imposter. Returns ErrPortInUse if the port
// is already claimed.
func (r *Registry) Add(im *imposter.Imposter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	port := im.Port()
	if _, exists := r.imposters[port]; exists {
		return fmt.Errorf("port %d: %w", port, ErrPortInUse)
	}
	r.imposters[port] = im
	return nil
}

// Get returns the imposter bound to a port.
func (r *Registry) Get(port int) (*imposter.Imposter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	im, ok := r.imposters[port]
	if !ok {
		return nil, fmt.Errorf("port %d: %w", port, ErrNotFound)
	}
	return im, nil
}

// Remove releases a port and returns the imposter that held it.
func (r *Registry) Remove(port int) (*imposter.Imposter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	im, ok := r.imposters[port]
	if !ok {
		return nil, fmt.Errorf("port %d: %w", port, ErrNotFound)
	}
	delete(r.imposters, port)
	return im, nil
}

// RemoveAll releases every port and returns the removed imposters.
func (r *Registry) RemoveAll() []*imposter.Imposter {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*imposter.Imposter, 0, len(r.imposters))
	for _, im := range r.imposters {
		out = append(out, im)
	}
	r.imposters = make(map[int]*imposter.Imposter)

	sort.Slice(out, func(i, j int) bool { return out[i].Port() < out[j].Port() })
	return out
}

// List returns all imposters ordered by port.
func (r *Registry) List() []*imposter.Imposter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*imposter.Imposter, 0, len(r.imposters))
	for _, im := range r.imposters {
		out = append(out, im)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Port() < out[j].Port() })
	return out
}

// Count returns the number of registered imposters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.imposters)
}
