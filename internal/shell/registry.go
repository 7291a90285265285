package shell

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Registry keeps pending loads until the browser collects them.
type Registry struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	loads map[string]*Load
}

// NewRegistry creates a Registry that evicts loads older than ttl.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:   ttl,
		now:   time.Now,
		loads: make(map[string]*Load),
	}
}

// Add stores load for collection.
func (r *Registry) Add(load *Load) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads[load.ID()] = load
}

// Take removes and returns the load with id. A load can be taken once.
func (r *Registry) Take(id string) (*Load, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	load, ok := r.loads[id]
	if ok {
		delete(r.loads, id)
	}
	return load, ok
}

// Len returns the number of loads waiting for collection.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.loads)
}

// Sweep evicts expired loads and returns how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, load := range r.loads {
		if load.CreatedAt().Before(cutoff) {
			delete(r.loads, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every ttl until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				slog.Debug("evicted uncollected shell loads", "count", n)
			}
		}
	}
}
