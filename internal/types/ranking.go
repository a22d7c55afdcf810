// Package types provides type definitions for structured data used throughout the hirelens system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SuitabilityLabel is the categorical bucket of a composite ranking score.
type SuitabilityLabel string

// Suitability labels. Brackets are closed on the lower side: a total of
// exactly 80.00 is Highly Suitable, 79.99 is Suitable.
const (
	HighlySuitable   SuitabilityLabel = "Highly Suitable"
	Suitable         SuitabilityLabel = "Suitable"
	NeedsImprovement SuitabilityLabel = "Needs Improvement"
)

// RankingComponents holds the four normalized component scores, each in
// [0, 100], that feed the weighted total.
type RankingComponents struct {
	SkillScore          float64 `json:"skill_score"`
	ExperienceScore     float64 `json:"experience_score"`
	RoleConfidenceScore float64 `json:"role_confidence_score"`
	ATSScore            float64 `json:"ats_score"`
}

// RankingResult is the persisted ranking of one candidate against one job.
// A ranking is uniquely identified by (CandidateID, JobID); recomputation
// overwrites the stored record in place, so CreatedAt reflects only the most
// recent computation.
type RankingResult struct {
	CandidateID   string            `json:"candidate_id"`
	JobID         string            `json:"job_id"`
	TotalScore    float64           `json:"total_score"`
	Label         SuitabilityLabel  `json:"suitability_label"`
	Components    RankingComponents `json:"details"`
	MissingSkills []string          `json:"missing_skills"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ATSLevel is the categorical bucket of an ATS quality score.
type ATSLevel string

// ATS levels: High for scores >= 80, Medium for 51-79, Low otherwise.
const (
	ATSHigh   ATSLevel = "High"
	ATSMedium ATSLevel = "Medium"
	ATSLow    ATSLevel = "Low"
)

// ATSReport is the rubric-based resume quality score with feedback lines.
type ATSReport struct {
	Score    int      `json:"ats_score"`
	Level    ATSLevel `json:"ats_level"`
	Feedback []string `json:"feedback"`
}

// LabeledEntities holds entities returned by an external recognizer for one
// document. All slices may be empty; the extractor degrades to lexicon-only
// matching when no recognizer output is available.
type LabeledEntities struct {
	Skills       []string `json:"skills"`
	Experience   []string `json:"experience"`
	Designations []string `json:"designations"`
}

// RoleLabel is a predicted role with the classifier's confidence in [0, 1].
type RoleLabel struct {
	Role       string  `json:"predicted_role"`
	Confidence float64 `json:"confidence"`
}
