package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrBadRequest indicates a malformed or invalid request body
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return e.Message
}

// ErrRankingNotFound indicates no stored ranking for the pair
type ErrRankingNotFound struct {
	CandidateID string
	JobID       string
}

func (e *ErrRankingNotFound) Error() string {
	return fmt.Sprintf("ranking not found: candidate %s, job %s", e.CandidateID, e.JobID)
}

// ErrSessionNotFound indicates the chat session does not exist
type ErrSessionNotFound struct {
	ID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrInvalidSessionID indicates the session id is not a valid UUID
type ErrInvalidSessionID struct {
	Value string
}

func (e *ErrInvalidSessionID) Error() string {
	return fmt.Sprintf("invalid session id: %q", e.Value)
}

// ErrCopilotUnavailable indicates the chat copilot is not configured
type ErrCopilotUnavailable struct{}

func (e *ErrCopilotUnavailable) Error() string {
	return "copilot not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrBadRequest, *ErrInvalidSessionID:
		return http.StatusBadRequest
	case *ErrRankingNotFound, *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrCopilotUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// typedError writes an error response with the status mapped from the
// error's type.
func (s *Server) typedError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
