package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/inclusionlab/cvmatch/internal/catalog"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrCandidateNotFound indicates no summary exists for the candidate
type ErrCandidateNotFound struct {
	ID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *catalog.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	}
	switch err.(type) {
	case *ErrCandidateNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
