package http

import (
	"errors"
	"net/http"

	"smart-task-analyzer/internal/analyzer"
	pkgErrors "smart-task-analyzer/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
// Validation failures keep their specific message; everything else
// gets a category label with the cause left in the logs.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analyzer.ErrTaskTooShort), errors.Is(err, analyzer.ErrTaskTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, analyzer.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "AI service is not properly configured")
	case errors.Is(err, analyzer.ErrProvider):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "The AI service encountered an error. Please try again.")
	case errors.Is(err, analyzer.ErrNoJSONFound), errors.Is(err, analyzer.ErrInvalidSchema):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Unable to analyze the task. Please try again.")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Unable to analyze the task. Please try again.")
	}
}
