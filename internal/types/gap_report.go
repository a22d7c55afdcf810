// Package types provides type definitions for structured data used throughout the hirelens system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirements represents the parsed requirements of a job posting.
//
// RequiredExperienceYears is 0 when no experience pattern was detected in the
// posting. That is the parser's inability-to-detect default, not a statement
// that the job has no requirement; callers must treat 0 as "no stated minimum".
type JobRequirements struct {
	RequiredSkills          SkillSet `json:"required_skills"`
	RequiredExperienceYears int      `json:"required_experience_years"`
	SourceText              string   `json:"source_text,omitempty"`
}

// MatchResult represents the outcome of comparing a resume skill set against
// a job's required skill set.
//
// Matched and Missing partition the normalized required set: their union is
// the required set and their intersection is empty. Extra holds resume skills
// the job did not ask for.
type MatchResult struct {
	MatchPercentage float64  `json:"match_percentage"`
	Matched         SkillSet `json:"matched_skills"`
	Missing         SkillSet `json:"missing_skills"`
	Extra           SkillSet `json:"extra_skills"`
	TotalRequired   int      `json:"total_required"`
	TotalMatched    int      `json:"total_matched"`
	TotalMissing    int      `json:"total_missing"`
}

// FitScore is the categorical bucket of a gap analysis.
type FitScore string

// Fit score buckets, derived from match percentage.
const (
	FitExcellent FitScore = "Excellent"
	FitGood      FitScore = "Good"
	FitFair      FitScore = "Fair"
)

// GapReport aggregates the full gap analysis between one resume and one job.
type GapReport struct {
	Match                MatchResult `json:"skill_analysis"`
	RequiredExperience   int         `json:"required_experience_years"`
	Recommendations      []string    `json:"recommendations"`
	FitScore             FitScore    `json:"fit_score"`
	MissingResumeSection []string    `json:"missing_sections,omitempty"`
}
