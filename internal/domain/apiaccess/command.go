package apiaccess

import "github.com/jsamuelsen11/api-access-service/internal/domain"

// AddAPIAccessCommand creates a new API access. Enabled is optional at the
// type level so that a missing or unparseable flag can be reported as
// InvalidEnabled instead of silently defaulting to false.
type AddAPIAccessCommand struct {
	ClientName  string
	APIClientID string
	Enabled     domain.Optional[bool]
	Description string
}

// Values returns the command's fields as a patch with every string present.
func (c AddAPIAccessCommand) Values() Patch {
	return Patch{
		ClientName:  domain.Some(c.ClientName),
		APIClientID: domain.Some(c.APIClientID),
		Enabled:     c.Enabled,
		Description: domain.Some(c.Description),
	}
}

// Entity returns the unsaved entity described by the command.
func (c AddAPIAccessCommand) Entity() APIAccess {
	return APIAccess{
		ClientName:  c.ClientName,
		APIClientID: c.APIClientID,
		Enabled:     c.Enabled.OrElse(false),
		Description: c.Description,
	}
}

// EditAPIAccessCommand changes the present fields of an existing API access.
type EditAPIAccessCommand struct {
	ID    int64
	Patch Patch
}

// GetAPIAccessForEditing queries the editing read model of one API access.
type GetAPIAccessForEditing struct {
	ID int64
}
