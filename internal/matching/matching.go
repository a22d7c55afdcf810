// Package matching compares resume skill sets against job-required skill
// sets and produces gap partitions with a match percentage.
package matching

import (
	"math"

	"github.com/hirelens/hirelens/internal/types"
)

// RoundScore rounds to 2 decimal places, half away from zero (half-up for
// the non-negative scores used here). Rounding is idempotent: re-rounding a
// rounded value is a no-op.
func RoundScore(value float64) float64 {
	return math.Round(value*100) / 100
}

// MatchSkills partitions the required skill set against the resume skill set.
//
// Matched and Missing always partition the normalized required set; Extra is
// resume minus required. The match percentage is 100*|matched|/|required|,
// rounded to 2 decimals. An empty required set yields exactly 0.0.
func MatchSkills(resumeSkills, requiredSkills types.SkillSet) types.MatchResult {
	matched := resumeSkills.Intersect(requiredSkills)
	missing := requiredSkills.Subtract(resumeSkills)
	extra := resumeSkills.Subtract(requiredSkills)

	percentage := 0.0
	if requiredSkills.Len() > 0 {
		percentage = RoundScore(float64(matched.Len()) / float64(requiredSkills.Len()) * 100)
	}

	return types.MatchResult{
		MatchPercentage: percentage,
		Matched:         matched,
		Missing:         missing,
		Extra:           extra,
		TotalRequired:   requiredSkills.Len(),
		TotalMatched:    matched.Len(),
		TotalMissing:    missing.Len(),
	}
}
