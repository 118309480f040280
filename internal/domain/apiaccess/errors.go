package apiaccess

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/api-access-service/internal/domain"
)

// ErrAPIAccess matches every error produced by API access operations.
var ErrAPIAccess = errors.New("api access error")

// ErrInvalidID is returned when an id is not a positive integer.
var ErrInvalidID = fmt.Errorf("%w: %w: id must be a positive integer", ErrAPIAccess, domain.ErrValidation)

// ConstraintError reports a single field that failed validation or a
// uniqueness check. Use errors.As to reach Code for exact assertions.
type ConstraintError struct {
	Field Field
	Kind  Kind
	Code  Code
}

// NewConstraintError builds a ConstraintError for the pair, resolving its code.
// Code is zero for pairs CodeFor does not know.
func NewConstraintError(f Field, k Kind) *ConstraintError {
	code, _ := CodeFor(f, k)
	return &ConstraintError{Field: f, Kind: k, Code: code}
}

func (e *ConstraintError) Error() string {
	var reason string
	switch e.Kind {
	case KindTooLarge:
		reason = "is too large"
	case KindAlreadyUsed:
		reason = "is already used"
	default:
		reason = "is invalid"
	}
	return fmt.Sprintf("api access %s %s (%s)", e.Field, reason, e.Code)
}

// Unwrap exposes ErrAPIAccess plus the domain classification: uniqueness
// failures are conflicts, everything else is a validation error.
func (e *ConstraintError) Unwrap() []error {
	class := domain.ErrValidation
	if e.Kind == KindAlreadyUsed {
		class = domain.ErrConflict
	}
	return []error{ErrAPIAccess, class}
}

// NotFoundError reports that no API access exists with the given id.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("api access %d not found", int64(e.ID))
}

// Unwrap exposes ErrAPIAccess and domain.ErrNotFound.
func (e *NotFoundError) Unwrap() []error {
	return []error{ErrAPIAccess, domain.ErrNotFound}
}
