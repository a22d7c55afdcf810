package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hirelens/hirelens/internal/ranking"
	"github.com/hirelens/hirelens/internal/types"
)

// handleCalculateRanking computes a candidate's composite suitability score
// for a job and upserts it. Recomputing for the same (candidate_id, job_id)
// pair overwrites the stored record; no history is kept.
func (s *Server) handleCalculateRanking(w http.ResponseWriter, r *http.Request) {
	var req types.CalculateRankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.typedError(w, &ErrBadRequest{Message: "Invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.typedError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	outcome := ranking.Compute(req.SkillMatch, req.ExperienceYears, req.RequiredExperience, req.RoleConfidence, req.ATSScore)

	result := &types.RankingResult{
		CandidateID:   req.CandidateID,
		JobID:         req.JobID,
		TotalScore:    outcome.TotalScore,
		Label:         outcome.Label,
		Components:    outcome.Components,
		MissingSkills: req.MissingSkills,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.db.UpsertRanking(r.Context(), result); err != nil {
		s.typedError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleBatchRanking ranks a pool of candidates against one job and upserts
// every result. The response preserves the request's candidate order.
func (s *Server) handleBatchRanking(w http.ResponseWriter, r *http.Request) {
	var req types.BatchRankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.typedError(w, &ErrBadRequest{Message: "Invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.typedError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	candidates := make([]ranking.CandidateInput, len(req.Candidates))
	for i, c := range req.Candidates {
		candidates[i] = ranking.CandidateInput{
			CandidateID:     c.CandidateID,
			SkillMatchPct:   c.SkillMatch,
			ExperienceYears: c.ExperienceYears,
			RoleConfidence:  c.RoleConfidence,
			ATSScore:        c.ATSScore,
			MissingSkills:   c.MissingSkills,
		}
	}

	results, err := ranking.ComputeAll(r.Context(), req.JobID, req.RequiredExperience, candidates)
	if err != nil {
		s.typedError(w, err)
		return
	}

	for i := range results {
		if err := s.db.UpsertRanking(r.Context(), &results[i]); err != nil {
			s.typedError(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// handleListRankings lists stored rankings, optionally filtered by job_id,
// sorted per the sort_by query parameter (score_desc by default).
func (s *Server) handleListRankings(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job_id")
	sortBy := r.URL.Query().Get("sort_by")

	results, err := s.db.ListRankings(r.Context(), jobID, sortBy)
	if err != nil {
		s.typedError(w, err)
		return
	}
	if results == nil {
		results = []types.RankingResult{}
	}
	s.jsonResponse(w, http.StatusOK, results)
}

// handleGetRanking retrieves one stored ranking.
func (s *Server) handleGetRanking(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("candidate_id")
	jobID := r.PathValue("job_id")

	result, err := s.db.GetRanking(r.Context(), candidateID, jobID)
	if err != nil {
		s.typedError(w, err)
		return
	}
	if result == nil {
		s.typedError(w, &ErrRankingNotFound{CandidateID: candidateID, JobID: jobID})
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
