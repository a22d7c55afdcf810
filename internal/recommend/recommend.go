// Package recommend turns match results and structural resume gaps into
// ordered, human-readable suggestions and assembles the full gap report.
package recommend

import (
	"fmt"
	"strings"

	"github.com/hirelens/hirelens/internal/extraction"
	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/matching"
	"github.com/hirelens/hirelens/internal/parsing"
	"github.com/hirelens/hirelens/internal/types"
)

// Fit score thresholds over match percentage.
const (
	fitExcellentThreshold = 75.0
	fitGoodThreshold      = 50.0
)

// Suggestion thresholds over match percentage.
const (
	lowMatchThreshold  = 50.0
	highMatchThreshold = 80.0
)

// Generate produces ordered suggestions from a match result, the job's
// requirements, and the resume's missing structural sections.
//
// Rules are applied in a fixed order so output is stable for snapshotting:
// missing-skill project/certification tips first, then per-section tips,
// then a match-percentage tip, then an ATS keyword-coverage tip. Output is
// deterministic for identical inputs (missing skills are walked in sorted
// order) and contains no verbatim duplicates. A gap-free resume still gets
// the high-alignment tip; only a mid-range match with no gaps and no missing
// sections yields an empty list.
func Generate(match types.MatchResult, reqs types.JobRequirements, missingSections []string) []string {
	var suggestions []string
	missingSkills := match.Missing.Sorted()

	if len(missingSkills) > 0 {
		topMissing := missingSkills
		if len(topMissing) > 3 {
			topMissing = topMissing[:3]
		}
		othersCount := len(missingSkills) - 3

		skillsStr := strings.Join(topMissing, ", ")
		if othersCount > 0 {
			skillsStr += fmt.Sprintf(" and %d others", othersCount)
		}

		suggestions = append(suggestions,
			fmt.Sprintf("Add projects demonstrating %s.", skillsStr),
			fmt.Sprintf("Consider acquiring certifications related to %s to validate your expertise.", topMissing[0]),
		)
	}

	for _, section := range missingSections {
		switch section {
		case extraction.SectionProjects:
			suggestions = append(suggestions, "Add a 'Projects' section to showcase practical application of your skills.")
		case extraction.SectionCertifications:
			suggestions = append(suggestions, "Include a 'Certifications' section if you have completed relevant courses.")
		case extraction.SectionExperience:
			if reqs.RequiredExperienceYears > 0 {
				suggestions = append(suggestions, "Ensure your 'Experience' section clearly outlines your roles and responsibilities.")
			}
		}
	}

	if match.MatchPercentage < lowMatchThreshold {
		suggestions = append(suggestions, "Focus on hands-on practice with the required technologies to build a stronger portfolio.")
	} else if match.MatchPercentage >= highMatchThreshold {
		suggestions = append(suggestions, "Excellent alignment! Ensure your summary highlights your strongest matching skills.")
	}

	if len(missingSkills) > 0 {
		listed := missingSkills
		if len(listed) > 5 {
			listed = listed[:5]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Ensure your resume explicitly mentions: %s to pass ATS filters.", strings.Join(listed, ", ")))
	}

	return dedupe(suggestions)
}

// FitScoreFor buckets a match percentage into a categorical fit score.
func FitScoreFor(matchPercentage float64) types.FitScore {
	switch {
	case matchPercentage >= fitExcellentThreshold:
		return types.FitExcellent
	case matchPercentage >= fitGoodThreshold:
		return types.FitGood
	default:
		return types.FitFair
	}
}

// Report runs the full gap analysis between a resume and a job description:
// extraction, requirement parsing, matching, section checks, and suggestion
// generation. entities may be nil when no recognizer is available.
func Report(lex *lexicon.Lexicon, resumeText, jobText string, entities *types.LabeledEntities) types.GapReport {
	resumeSkills := extraction.ExtractSkills(lex, resumeText, entities)
	reqs := parsing.ParseJobRequirements(lex, jobText)
	match := matching.MatchSkills(resumeSkills, reqs.RequiredSkills)
	missingSections := extraction.MissingSections(resumeText)

	return types.GapReport{
		Match:                match,
		RequiredExperience:   reqs.RequiredExperienceYears,
		Recommendations:      Generate(match, reqs, missingSections),
		FitScore:             FitScoreFor(match.MatchPercentage),
		MissingResumeSection: missingSections,
	}
}

// dedupe drops verbatim duplicates while preserving first-seen order.
func dedupe(suggestions []string) []string {
	if len(suggestions) == 0 {
		return suggestions
	}
	seen := make(map[string]bool, len(suggestions))
	result := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if seen[s] {
			continue
		}
		seen[s] = true
		result = append(result, s)
	}
	return result
}
