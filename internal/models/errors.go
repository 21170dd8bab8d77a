package models

import "errors"

// Domain errors for drill sessions and assessments.
var (
	ErrSessionNotFound = errors.New("no active session for that code")
	ErrInvalidCode     = errors.New("invalid session code")
	ErrUnknownCatalog  = errors.New("unknown catalog")
	ErrInvalidTier     = errors.New("invalid tier")
	ErrMissingMarks    = errors.New("all three assessment marks are required")
)
