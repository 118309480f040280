// Package health provides a thread-safe health check registry for the storage
// backends. The CLI health command reports on it.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/api-access-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Component is the outcome of one named check.
type Component struct {
	Name string `json:"name"`
	// Error is empty when the component is healthy.
	Error string `json:"error,omitempty"`
}

// Report is a name-ordered snapshot of all checks.
type Report struct {
	Healthy    bool        `json:"healthy"`
	Components []Component `json:"components"`
}

// Report runs CheckAll and orders the results by name.
func (r *Registry) Report(ctx context.Context) Report {
	results := r.CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	slices.Sort(names)

	rep := Report{Healthy: true, Components: make([]Component, 0, len(names))}
	for _, name := range names {
		c := Component{Name: name}
		if err := results[name]; err != nil {
			c.Error = err.Error()
			rep.Healthy = false
		}
		rep.Components = append(rep.Components, c)
	}
	return rep
}
