package service

import "errors"

// Sentinel errors for the request-level failure taxonomy. Services wrap
// them with context via fmt.Errorf("%w: ...") and handlers map them to
// HTTP statuses with errors.Is.
var (
	ErrInvalidInput = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// ErrMisconfigured is startup-time only and fatal, never mapped to
	// a response.
	ErrMisconfigured = errors.New("auth config invalid")
)
