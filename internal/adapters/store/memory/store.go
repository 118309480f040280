// Package memory provides an in-process API access store. All mutations are
// serialised by a single mutex so that uniqueness checks and writes cannot
// interleave.
package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
	"github.com/jsamuelsen11/api-access-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.APIAccessStore = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// Store keeps API accesses in a map keyed by id. Ids start at 1 and are never
// reused.
type Store struct {
	mu       sync.RWMutex
	entities map[apiaccess.ID]apiaccess.APIAccess
	lastID   apiaccess.ID
}

// New creates an empty Store.
func New() *Store {
	return &Store{entities: make(map[apiaccess.ID]apiaccess.APIAccess)}
}

// Add persists a new API access and assigns its id.
func (s *Store) Add(_ context.Context, a apiaccess.APIAccess) (apiaccess.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(a, 0, true, true); err != nil {
		return 0, err
	}

	s.lastID++
	a.ID = s.lastID
	s.entities[a.ID] = a
	return a.ID, nil
}

// Get returns a copy of the stored API access.
func (s *Store) Get(_ context.Context, id apiaccess.ID) (apiaccess.APIAccess, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.entities[id]
	if !ok {
		return apiaccess.APIAccess{}, &apiaccess.NotFoundError{ID: id}
	}
	return a, nil
}

// Update applies the present patch fields in place.
func (s *Store) Update(_ context.Context, id apiaccess.ID, patch apiaccess.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entities[id]
	if !ok {
		return &apiaccess.NotFoundError{ID: id}
	}

	next := patch.Apply(current)
	next.ID = id
	if err := s.checkUnique(next, id,
		patch.Has(apiaccess.FieldClientName),
		patch.Has(apiaccess.FieldAPIClientID),
	); err != nil {
		return err
	}

	s.entities[id] = next
	return nil
}

// Len returns the number of stored API accesses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "memory"
}

// HealthCheck implements ports.HealthChecker. An in-process store is always
// healthy.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op; it lets the store stand in wherever a closable driver is
// expected.
func (s *Store) Close() error {
	return nil
}

// checkUnique reports the first uniqueness conflict of candidate against every
// entity other than self. Client names are checked across the whole store
// before client ids. Must be called with s.mu held.
func (s *Store) checkUnique(candidate apiaccess.APIAccess, self apiaccess.ID, name, clientID bool) error {
	if name {
		for id, e := range s.entities {
			if id != self && e.ClientName == candidate.ClientName {
				return apiaccess.NewConstraintError(apiaccess.FieldClientName, apiaccess.KindAlreadyUsed)
			}
		}
	}
	if clientID {
		for id, e := range s.entities {
			if id != self && e.APIClientID == candidate.APIClientID {
				return apiaccess.NewConstraintError(apiaccess.FieldAPIClientID, apiaccess.KindAlreadyUsed)
			}
		}
	}
	return nil
}
