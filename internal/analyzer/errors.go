package analyzer

import "errors"

// Domain-specific errors for the analyzer package.
var (
	ErrTaskTooShort  = errors.New("task must be at least 3 characters")
	ErrTaskTooLong   = errors.New("task cannot exceed 500 characters")
	ErrNotConfigured = errors.New("analysis service is not configured")

	// ErrNoJSONFound keeps the "No JSON found" phrase callers match on.
	ErrNoJSONFound = errors.New("No JSON found in model response")

	ErrInvalidSchema = errors.New("model response failed schema validation")
	ErrProvider      = errors.New("model provider call failed")
)
