// Package server provides the HTTP REST API for the ATS scorer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/ats-scorer/internal/extract"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrExtraction indicates text could not be extracted from an upload
type ErrExtraction struct {
	Filename string
	Cause    error
}

func (e *ErrExtraction) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Cause)
}

func (e *ErrExtraction) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var extractionErr *ErrExtraction
	var unsupportedErr *extract.ErrUnsupportedFormat

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &extractionErr),
		errors.As(err, &unsupportedErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
