package domain

import "errors"

// Sentinel errors for errors.Is() checking. Entity packages wrap these so that
// callers can classify a failure without knowing the concrete error type.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
