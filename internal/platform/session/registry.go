package session

import (
	"sync"
	"time"
)

// Registry owns one store value per session ID. Stores are built lazily
// by the injected factory on first touch and evicted once a session has
// been idle past the TTL, giving session state an explicit lifecycle
// instead of process-wide singletons.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	factory func(sessionID string) T
	ttl     time.Duration
}

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// NewRegistry creates a registry whose stores are produced by factory.
func NewRegistry[T any](ttl time.Duration, factory func(sessionID string) T) *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*entry[T]),
		factory: factory,
		ttl:     ttl,
	}
}

// Get returns the store for sessionID, creating it on first use and
// refreshing its idle timer.
func (r *Registry[T]) Get(sessionID string) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry[T]{value: r.factory(sessionID)}
		r.entries[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e.value
}

// Sweep evicts stores idle past the TTL and reports how many were removed.
func (r *Registry[T]) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.ttl)
	removed := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Janitor runs Sweep on the given interval until stop is closed.
func (r *Registry[T]) Janitor(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-stop:
			return
		}
	}
}

// Len reports how many live sessions the registry holds.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
