package ports

import (
	"context"

	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
)

// APIAccessService defines the command and query port for API access
// management. Implemented by the application layer.
//
// Every returned error matches apiaccess.ErrAPIAccess.
type APIAccessService interface {
	// AddAPIAccess validates and persists a new API access and returns its id.
	// Returns *apiaccess.ConstraintError for the first failing field.
	AddAPIAccess(ctx context.Context, cmd apiaccess.AddAPIAccessCommand) (apiaccess.ID, error)

	// EditAPIAccess validates and applies the present fields of the patch.
	// Returns *apiaccess.NotFoundError if the API access does not exist and
	// *apiaccess.ConstraintError for the first failing field.
	EditAPIAccess(ctx context.Context, cmd apiaccess.EditAPIAccessCommand) error

	// GetAPIAccessForEditing returns a fresh read model snapshot.
	// Returns *apiaccess.NotFoundError if the API access does not exist.
	GetAPIAccessForEditing(ctx context.Context, q apiaccess.GetAPIAccessForEditing) (apiaccess.EditableAPIAccess, error)
}
