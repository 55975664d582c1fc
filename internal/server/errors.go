// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrJobNotFound indicates the job does not exist (or belongs to another tenant).
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrJobNotParsed indicates the job has no parsed requirement profile yet.
type ErrJobNotParsed struct {
	JobID uuid.UUID
}

func (e *ErrJobNotParsed) Error() string {
	return fmt.Sprintf("job %s has no parsed requirements; parse it before matching", e.JobID)
}

// ErrEmptyCandidatePool indicates the company has no candidates to match against.
type ErrEmptyCandidatePool struct {
	CompanyID uuid.UUID
}

func (e *ErrEmptyCandidatePool) Error() string {
	return fmt.Sprintf("no candidates found for company %s", e.CompanyID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrJobNotParsed, *ErrEmptyCandidatePool, *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
