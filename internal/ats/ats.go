// Package ats implements the rubric-based resume quality score emulating an
// applicant tracking system's keyword and structure checks.
package ats

import (
	"fmt"

	"github.com/hirelens/hirelens/internal/extraction"
	"github.com/hirelens/hirelens/internal/types"
)

// Rubric bucket caps. Buckets are additive and independently capped; the
// final sum is clamped to [0, 100].
const (
	maxLengthPoints  = 20
	maxSectionPoints = 30
	maxSkillPoints   = 30
	maxContactPoints = 20

	pointsPerSection = 6
)

// Word-count bands.
const (
	shortResumeWords = 200
	longResumeWords  = 1500
)

// Skill-density bands.
const (
	lowSkillCount  = 5
	highSkillCount = 10
)

// Level thresholds over the final score.
const (
	highLevelThreshold   = 80
	mediumLevelThreshold = 51
)

// Score computes the ATS report for a resume.
//
// skills is the extracted skill set for the document; roleLabel is accepted
// for context but does not participate in the numeric formula. It is a no-op
// input retained so callers don't need a signature change when role-aware
// scoring lands.
func Score(text string, skills types.SkillSet, roleLabel string) types.ATSReport {
	_ = roleLabel

	score := 0
	var feedback []string

	// Length.
	words := extraction.CountWords(text)
	switch {
	case words < shortResumeWords:
		score += 5
		feedback = append(feedback, "Resume is too short. Aim for 400-800 words to cover your background.")
	case words > longResumeWords:
		score += 10
		feedback = append(feedback, "Resume is very long. Consider condensing to the most relevant content.")
	default:
		score += maxLengthPoints
		feedback = append(feedback, "Resume length is in a good range.")
	}

	// Structural completeness.
	found := extraction.ATSSectionCount(text)
	sectionPoints := found * pointsPerSection
	if sectionPoints > maxSectionPoints {
		sectionPoints = maxSectionPoints
	}
	score += sectionPoints
	missing := extraction.MissingATSSections(text)
	for _, section := range missing {
		feedback = append(feedback, fmt.Sprintf("Add a '%s' section to improve structure.", section))
	}
	if len(missing) == 0 {
		feedback = append(feedback, "All key sections are present.")
	}

	// Skill density.
	switch count := skills.Len(); {
	case count < lowSkillCount:
		score += 5
		feedback = append(feedback, fmt.Sprintf("Only %d skills detected. List more relevant technologies.", count))
	case count < highSkillCount:
		score += 15
		feedback = append(feedback, fmt.Sprintf("%d skills detected. Consider adding a few more keywords.", count))
	default:
		score += maxSkillPoints
		feedback = append(feedback, fmt.Sprintf("Strong skill coverage with %d skills detected.", count))
	}

	// Contact formatting.
	if extraction.HasEmail(text) {
		score += 10
	} else {
		feedback = append(feedback, "No email address detected. Add one so recruiters can reach you.")
	}
	if extraction.HasPhone(text) {
		score += 10
	} else {
		feedback = append(feedback, "No phone number detected. Add one so recruiters can reach you.")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return types.ATSReport{
		Score:    score,
		Level:    levelFor(score),
		Feedback: feedback,
	}
}

func levelFor(score int) types.ATSLevel {
	switch {
	case score >= highLevelThreshold:
		return types.ATSHigh
	case score >= mediumLevelThreshold:
		return types.ATSMedium
	default:
		return types.ATSLow
	}
}
