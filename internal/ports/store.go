package ports

import (
	"context"

	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
)

// APIAccessStore persists API access entities and enforces the store-wide
// uniqueness of client names and API client ids. Implementations run the
// uniqueness check and the mutation as one atomic unit.
type APIAccessStore interface {
	// Add persists a new entity and returns its assigned id. a.ID is ignored.
	// Returns *apiaccess.ConstraintError with KindAlreadyUsed when the client
	// name or API client id is taken; the client name is checked first.
	Add(ctx context.Context, a apiaccess.APIAccess) (apiaccess.ID, error)

	// Get returns the entity with the given id.
	// Returns *apiaccess.NotFoundError if it does not exist.
	Get(ctx context.Context, id apiaccess.ID) (apiaccess.APIAccess, error)

	// Update applies the present fields of the patch to the entity.
	// Returns *apiaccess.NotFoundError if it does not exist, or
	// *apiaccess.ConstraintError when a new value is already used by another
	// entity. On error the entity is unchanged.
	Update(ctx context.Context, id apiaccess.ID, patch apiaccess.Patch) error
}
