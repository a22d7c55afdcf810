// Package parsing derives structured job requirements from free-text job
// descriptions.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hirelens/hirelens/internal/extraction"
	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/types"
)

// experiencePattern captures the integer in phrases like "3+ years of
// experience", "5 yrs exp", "2 years experience".
var experiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)

// ParseJobRequirements extracts the required skill set and required years of
// experience from a job description.
//
// Skills come from a lexicon-only scan of the lowercased description; no
// external recognizer is consulted here. Only the first experience mention is
// used even when several exist. When no experience pattern matches,
// RequiredExperienceYears is 0, meaning "no stated minimum", not "zero years
// required".
func ParseJobRequirements(lex *lexicon.Lexicon, jobText string) types.JobRequirements {
	lowered := strings.ToLower(jobText)

	required := extraction.ExtractSkills(lex, lowered, nil)

	return types.JobRequirements{
		RequiredSkills:          required,
		RequiredExperienceYears: ParseExperienceYears(lowered),
		SourceText:              jobText,
	}
}

// ParseExperienceYears returns the integer from the first experience mention
// in text, or 0 when none matches. The same pattern serves both job
// descriptions ("requires 5+ years of experience") and resumes ("3 years of
// experience building APIs").
func ParseExperienceYears(text string) int {
	if m := experiencePattern.FindStringSubmatch(text); m != nil {
		// The capture group is all digits; Atoi can only fail on overflow,
		// in which case the no-match default stands.
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			return parsed
		}
	}
	return 0
}
