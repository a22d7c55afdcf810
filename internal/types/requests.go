// Package types provides type definitions for structured data used throughout the hirelens system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeResumeRequest represents the request to analyze a resume: entity
// extraction, role classification, and ATS scoring.
type AnalyzeResumeRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// MatchJobRequest represents the request to run a gap analysis between a
// resume and a job description.
type MatchJobRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// ScoreATSRequest represents the request to compute an ATS report for a
// resume. Role is optional context; it does not affect the numeric score.
type ScoreATSRequest struct {
	Text string `json:"text" validate:"required,min=1"`
	Role string `json:"role,omitempty"`
}

// CalculateRankingRequest represents the request to compute and persist a
// candidate ranking for one job. Component inputs are expected to be
// pre-sanitized by the caller; out-of-range values are not clamped here.
type CalculateRankingRequest struct {
	CandidateID        string   `json:"candidate_id" validate:"required,min=1"`
	JobID              string   `json:"job_id" validate:"required,min=1"`
	SkillMatch         float64  `json:"skill_match" validate:"min=0,max=100"`
	ExperienceYears    float64  `json:"experience_years" validate:"min=0"`
	RequiredExperience float64  `json:"required_experience" validate:"min=0"`
	RoleConfidence     float64  `json:"role_confidence" validate:"min=0,max=1"`
	ATSScore           float64  `json:"ats_score" validate:"min=0,max=100"`
	MissingSkills      []string `json:"missing_skills,omitempty"`
}

// BatchCandidate is one candidate's pre-computed component metrics inside a
// batch ranking request.
type BatchCandidate struct {
	CandidateID     string   `json:"candidate_id" validate:"required,min=1"`
	SkillMatch      float64  `json:"skill_match" validate:"min=0,max=100"`
	ExperienceYears float64  `json:"experience_years" validate:"min=0"`
	RoleConfidence  float64  `json:"role_confidence" validate:"min=0,max=1"`
	ATSScore        float64  `json:"ats_score" validate:"min=0,max=100"`
	MissingSkills   []string `json:"missing_skills,omitempty"`
}

// BatchRankingRequest represents the request to rank a pool of candidates
// against one job in a single call. Every result is persisted with the same
// overwrite semantics as a single calculation.
type BatchRankingRequest struct {
	JobID              string           `json:"job_id" validate:"required,min=1"`
	RequiredExperience float64          `json:"required_experience" validate:"min=0"`
	Candidates         []BatchCandidate `json:"candidates" validate:"required,min=1,dive"`
}

// ChatMessage is one prior turn of an interview copilot conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest represents an interview copilot chat turn.
type ChatRequest struct {
	Message string        `json:"message" validate:"required,min=1"`
	Context string        `json:"context,omitempty"`
	History []ChatMessage `json:"history,omitempty" validate:"dive"`
}

// Validate validates the AnalyzeResumeRequest using the validator.
func (r *AnalyzeResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchJobRequest using the validator.
func (r *MatchJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreATSRequest using the validator.
func (r *ScoreATSRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CalculateRankingRequest using the validator.
func (r *CalculateRankingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchRankingRequest using the validator.
func (r *BatchRankingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
