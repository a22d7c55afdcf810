package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hirelens/hirelens/internal/ats"
	"github.com/hirelens/hirelens/internal/extraction"
	"github.com/hirelens/hirelens/internal/recommend"
	"github.com/hirelens/hirelens/internal/types"
)

// AnalyzeResumeResponse is the response for POST /analyze-resume.
type AnalyzeResumeResponse struct {
	Skills         types.SkillSet         `json:"skills"`
	Entities       *types.LabeledEntities `json:"entities,omitempty"`
	Classification *types.RoleLabel       `json:"classification,omitempty"`
	ATS            types.ATSReport        `json:"ats"`
}

// handleAnalyzeResume extracts skills and entities from a resume, classifies
// its role when a classifier is available, and computes the ATS report.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.typedError(w, &ErrBadRequest{Message: "Invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.typedError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	var entities *types.LabeledEntities
	if s.recognizer != nil {
		recognized, err := s.recognizer.RecognizeEntities(r.Context(), req.Text)
		if err != nil {
			// Recognition is a best-effort enrichment; fall back to
			// lexicon-only extraction.
			log.Printf("entity recognition failed, using lexicon only: %v", err)
		} else {
			entities = recognized
		}
	}

	skills := extraction.ExtractSkills(s.lexicon, req.Text, entities)

	var classification *types.RoleLabel
	roleName := ""
	if s.classifier != nil {
		label, err := s.classifier.ClassifyRole(r.Context(), req.Text)
		if err != nil {
			log.Printf("role classification failed: %v", err)
		} else {
			classification = &label
			roleName = label.Role
		}
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResumeResponse{
		Skills:         skills,
		Entities:       entities,
		Classification: classification,
		ATS:            ats.Score(req.Text, skills, roleName),
	})
}

// handleMatchJob runs the full gap analysis between a resume and a job
// description.
func (s *Server) handleMatchJob(w http.ResponseWriter, r *http.Request) {
	var req types.MatchJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.typedError(w, &ErrBadRequest{Message: "Invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.typedError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	var entities *types.LabeledEntities
	if s.recognizer != nil {
		recognized, err := s.recognizer.RecognizeEntities(r.Context(), req.ResumeText)
		if err != nil {
			log.Printf("entity recognition failed, using lexicon only: %v", err)
		} else {
			entities = recognized
		}
	}

	report := recommend.Report(s.lexicon, req.ResumeText, req.JobDescription, entities)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleScoreATS computes the ATS report for a resume.
func (s *Server) handleScoreATS(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreATSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.typedError(w, &ErrBadRequest{Message: "Invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.typedError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	skills := extraction.ExtractSkills(s.lexicon, req.Text, nil)
	s.jsonResponse(w, http.StatusOK, ats.Score(req.Text, skills, req.Role))
}
