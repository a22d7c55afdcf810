// Package server provides the HTTP REST API for the hirelens analysis
// service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hirelens/hirelens/internal/copilot"
	"github.com/hirelens/hirelens/internal/db"
	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/ner"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	lexicon    *lexicon.Lexicon
	recognizer ner.EntityRecognizer
	classifier ner.RoleClassifier
	copilot    *copilot.Copilot
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	LexiconPath string
}

// New creates a new server instance. The Gemini-backed recognizer,
// classifier, and copilot are only wired when an API key is configured; the
// analysis endpoints degrade to lexicon-only extraction without one.
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	lex, err := lexicon.LoadFile(cfg.LexiconPath)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	s := &Server{
		db:      database,
		lexicon: lex,
	}

	if cfg.APIKey != "" {
		recognizer, err := ner.NewGeminiRecognizer(ctx, cfg.APIKey, "")
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create recognizer: %w", err)
		}
		s.recognizer = recognizer
		s.classifier = recognizer

		chat, err := copilot.New(ctx, cfg.APIKey, "")
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create copilot: %w", err)
		}
		s.copilot = chat
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Analysis endpoints
	mux.HandleFunc("POST /analyze-resume", s.handleAnalyzeResume)
	mux.HandleFunc("POST /match-job", s.handleMatchJob)
	mux.HandleFunc("POST /score-ats", s.handleScoreATS)

	// Ranking endpoints
	mux.HandleFunc("POST /rankings/calculate", s.handleCalculateRanking)
	mux.HandleFunc("POST /rankings/batch", s.handleBatchRanking)
	mux.HandleFunc("GET /rankings", s.handleListRankings)
	mux.HandleFunc("GET /rankings/{candidate_id}/{job_id}", s.handleGetRanking)

	// Interview copilot endpoints
	mux.HandleFunc("POST /chat/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /chat/sessions", s.handleListSessions)
	mux.HandleFunc("GET /chat/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /chat/sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /interview-chat", s.handleInterviewChat)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withMetrics(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if closer, ok := s.recognizer.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if s.copilot != nil {
		_ = s.copilot.Close()
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// handleHealth returns server health status and which optional capabilities
// are wired.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"capabilities": map[string]bool{
			"recognizer": s.recognizer != nil,
			"classifier": s.classifier != nil,
			"copilot":    s.copilot != nil,
		},
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
