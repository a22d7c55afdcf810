package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/hirelens/hirelens/internal/db"
	"github.com/hirelens/hirelens/internal/types"
)

// CreateSessionRequest is the request body for POST /chat/sessions.
type CreateSessionRequest struct {
	Title string `json:"title"`
}

// SessionResponse is a chat session with its messages.
type SessionResponse struct {
	Session  *db.ChatSession    `json:"session"`
	Messages []db.StoredMessage `json:"messages"`
}

// ChatResponse is the reply to an interview chat turn.
type ChatResponse struct {
	Response string `json:"response"`
}

// handleCreateSession creates a new interview chat session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.typedError(w, &ErrBadRequest{Message: "Invalid request body: " + err.Error()})
		return
	}
	if req.Title == "" {
		req.Title = "New Interview"
	}

	session, err := s.db.CreateSession(r.Context(), req.Title)
	if err != nil {
		s.typedError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, session)
}

// handleListSessions lists chat sessions, newest first.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.db.ListSessions(r.Context())
	if err != nil {
		s.typedError(w, err)
		return
	}
	if sessions == nil {
		sessions = []db.ChatSession{}
	}
	s.jsonResponse(w, http.StatusOK, sessions)
}

// handleGetSession retrieves a session and its messages.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.typedError(w, &ErrInvalidSessionID{Value: r.PathValue("id")})
		return
	}

	session, err := s.db.GetSession(r.Context(), id)
	if err != nil {
		s.typedError(w, err)
		return
	}
	if session == nil {
		s.typedError(w, &ErrSessionNotFound{ID: id})
		return
	}

	messages, err := s.db.ListMessages(r.Context(), id)
	if err != nil {
		s.typedError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, SessionResponse{Session: session, Messages: messages})
}

// handleDeleteSession removes a session and its messages.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.typedError(w, &ErrInvalidSessionID{Value: r.PathValue("id")})
		return
	}

	deleted, err := s.db.DeleteSession(r.Context(), id)
	if err != nil {
		s.typedError(w, err)
		return
	}
	if !deleted {
		s.typedError(w, &ErrSessionNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "session deleted"})
}

// handleInterviewChat answers one interview copilot turn, persisting both
// sides of the exchange when a session_id query parameter is supplied.
func (s *Server) handleInterviewChat(w http.ResponseWriter, r *http.Request) {
	if s.copilot == nil {
		s.typedError(w, &ErrCopilotUnavailable{})
		return
	}

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.typedError(w, &ErrBadRequest{Message: "Invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.typedError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	var sessionID uuid.UUID
	hasSession := false
	if raw := r.URL.Query().Get("session_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			s.typedError(w, &ErrInvalidSessionID{Value: raw})
			return
		}
		sessionID = parsed
		hasSession = true
	}

	if hasSession {
		if _, err := s.db.AddMessage(r.Context(), sessionID, "user", req.Message); err != nil {
			log.Printf("failed to persist user message: %v", err)
		}
	}

	reply, err := s.copilot.Reply(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "chat failed: "+err.Error())
		return
	}

	if hasSession {
		if _, err := s.db.AddMessage(r.Context(), sessionID, "ai", reply); err != nil {
			log.Printf("failed to persist ai message: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{Response: reply})
}
