package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrBadRequest(t *testing.T) {
	err := &ErrBadRequest{Message: "missing field"}
	assert.Equal(t, "missing field", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrRankingNotFound(t *testing.T) {
	err := &ErrRankingNotFound{CandidateID: "cand-1", JobID: "job-1"}
	assert.Contains(t, err.Error(), "ranking not found")
	assert.Contains(t, err.Error(), "cand-1")
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrSessionNotFound(t *testing.T) {
	id := uuid.New()
	err := &ErrSessionNotFound{ID: id}
	assert.Contains(t, err.Error(), "session not found")
	assert.Contains(t, err.Error(), id.String())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrInvalidSessionID(t *testing.T) {
	err := &ErrInvalidSessionID{Value: "xyz"}
	assert.Contains(t, err.Error(), "invalid session id")
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrCopilotUnavailable(t *testing.T) {
	err := &ErrCopilotUnavailable{}
	assert.Equal(t, "copilot not configured", err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
}

func TestHTTPStatus_DefaultsToInternalServerError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("database down")))
}

func TestTypedError_WritesMappedStatusAndMessage(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.typedError(w, &ErrCopilotUnavailable{})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "copilot not configured")
}
