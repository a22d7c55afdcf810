// Package ranking combines skill match, experience coverage, classifier
// confidence, and ATS score into one weighted suitability score and label.
package ranking

import (
	"github.com/hirelens/hirelens/internal/matching"
	"github.com/hirelens/hirelens/internal/types"
)

// Component weights for the composite score.
const (
	skillMatchWeight     = 0.40
	experienceWeight     = 0.30
	roleConfidenceWeight = 0.20
	atsWeight            = 0.10
)

// Suitability thresholds over the total score. Brackets are closed on the
// lower side: exactly 80.00 is Highly Suitable, exactly 60.00 is Suitable.
const (
	highlySuitableThreshold = 80.0
	suitableThreshold       = 60.0
)

// Outcome is the computed composite score before persistence identifiers are
// attached.
type Outcome struct {
	TotalScore float64                 `json:"total_score"`
	Label      types.SuitabilityLabel  `json:"suitability_label"`
	Components types.RankingComponents `json:"details"`
}

// Compute derives the weighted suitability score from four component inputs.
//
// skillMatchPct and atsScore are expected in [0, 100], roleConfidence in
// [0, 1], experience values non-negative. Inputs are not clamped or
// validated; callers own sanitization and behavior on out-of-range values is
// unspecified.
//
// The experience component is a capped linear ramp: 100 when the job states
// no minimum (requiredExperience <= 0), otherwise
// min(100, 100*experienceYears/requiredExperience).
func Compute(skillMatchPct, experienceYears, requiredExperience, roleConfidence, atsScore float64) Outcome {
	var expScore float64
	if requiredExperience <= 0 {
		expScore = 100.0
	} else {
		expScore = experienceYears / requiredExperience * 100.0
		if expScore > 100.0 {
			expScore = 100.0
		}
	}

	roleScore := roleConfidence * 100.0

	total := matching.RoundScore(
		skillMatchPct*skillMatchWeight +
			expScore*experienceWeight +
			roleScore*roleConfidenceWeight +
			atsScore*atsWeight,
	)

	return Outcome{
		TotalScore: total,
		Label:      labelFor(total),
		Components: types.RankingComponents{
			SkillScore:          matching.RoundScore(skillMatchPct),
			ExperienceScore:     matching.RoundScore(expScore),
			RoleConfidenceScore: matching.RoundScore(roleScore),
			ATSScore:            matching.RoundScore(atsScore),
		},
	}
}

func labelFor(total float64) types.SuitabilityLabel {
	switch {
	case total >= highlySuitableThreshold:
		return types.HighlySuitable
	case total >= suitableThreshold:
		return types.Suitable
	default:
		return types.NeedsImprovement
	}
}
