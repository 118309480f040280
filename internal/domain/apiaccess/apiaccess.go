// Package apiaccess models API client access credentials: the entity, its
// partial update patch, the editing read model, and the field constraints
// with their stable error codes.
package apiaccess

import (
	"strconv"

	"github.com/jsamuelsen11/api-access-service/internal/domain"
)

// ID identifies an API access. It is assigned by the store and never changes.
type ID int64

// NewID validates a raw identifier.
func NewID(v int64) (ID, error) {
	if v <= 0 {
		return 0, ErrInvalidID
	}
	return ID(v), nil
}

// Value returns the raw identifier.
func (id ID) Value() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// APIAccess is a persisted API client credential.
type APIAccess struct {
	ID          ID
	ClientName  string
	APIClientID string
	Enabled     bool
	Description string
}

// Patch is a partial set of field values. Absent fields are left untouched by
// Apply and skipped by patch validation.
type Patch struct {
	ClientName  domain.Optional[string]
	APIClientID domain.Optional[string]
	Enabled     domain.Optional[bool]
	Description domain.Optional[string]
}

// IsEmpty reports whether no field is present.
func (p Patch) IsEmpty() bool {
	return !p.ClientName.IsSet() && !p.APIClientID.IsSet() &&
		!p.Enabled.IsSet() && !p.Description.IsSet()
}

// Has reports whether the field is present in the patch.
func (p Patch) Has(f Field) bool {
	switch f {
	case FieldClientName:
		return p.ClientName.IsSet()
	case FieldAPIClientID:
		return p.APIClientID.IsSet()
	case FieldEnabled:
		return p.Enabled.IsSet()
	case FieldDescription:
		return p.Description.IsSet()
	default:
		return false
	}
}

// Apply returns a copy of a with every present field overwritten.
func (p Patch) Apply(a APIAccess) APIAccess {
	if v, ok := p.ClientName.Get(); ok {
		a.ClientName = v
	}
	if v, ok := p.APIClientID.Get(); ok {
		a.APIClientID = v
	}
	if v, ok := p.Enabled.Get(); ok {
		a.Enabled = v
	}
	if v, ok := p.Description.Get(); ok {
		a.Description = v
	}
	return a
}

// EditableAPIAccess is the read model returned for editing. It is a value
// snapshot; mutating it has no effect on the stored entity.
type EditableAPIAccess struct {
	ID          ID
	ClientName  string
	APIClientID string
	Enabled     bool
	Description string
}

// NewEditableAPIAccess projects an entity into its editing read model.
func NewEditableAPIAccess(a APIAccess) EditableAPIAccess {
	return EditableAPIAccess{
		ID:          a.ID,
		ClientName:  a.ClientName,
		APIClientID: a.APIClientID,
		Enabled:     a.Enabled,
		Description: a.Description,
	}
}
