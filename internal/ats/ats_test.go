package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelens/hirelens/internal/types"
)

// fullResume builds a resume with every section, an email, a phone number,
// and enough filler to land in the rewarded 200-1500 word band.
func fullResume() string {
	var b strings.Builder
	b.WriteString("Jane Doe\n")
	b.WriteString("Contact: jane.doe@example.com | (555) 123-4567\n\n")
	b.WriteString("Experience\nSenior backend engineer shipping distributed systems.\n\n")
	b.WriteString("Education\nBS Computer Science.\n\n")
	b.WriteString("Skills\nPython, Go, Docker, Kubernetes, AWS, PostgreSQL, Redis, Terraform, React, SQL\n\n")
	b.WriteString("Projects\nOpen source contributions and side projects.\n\n")
	b.WriteString(strings.Repeat("built and maintained production services at scale ", 40))
	return b.String()
}

func tenSkills() types.SkillSet {
	return types.NewSkillSet(
		"python", "go", "docker", "kubernetes", "aws",
		"postgresql", "redis", "terraform", "react", "sql",
	)
}

func TestScore_FullResumeScoresMaximum(t *testing.T) {
	report := Score(fullResume(), tenSkills(), "")

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, types.ATSHigh, report.Level)
	assert.Contains(t, report.Feedback, "Resume length is in a good range.")
	assert.Contains(t, report.Feedback, "All key sections are present.")
	assert.Contains(t, report.Feedback, "Strong skill coverage with 10 skills detected.")
}

func TestScore_ShortResumePenalized(t *testing.T) {
	report := Score("Experience Education Skills Projects contact@example.com (555) 123-4567", tenSkills(), "")

	// 5 (short) + 30 (sections) + 30 (skills) + 20 (contact) = 85.
	assert.Equal(t, 85, report.Score)
	assert.Contains(t, report.Feedback, "Resume is too short. Aim for 400-800 words to cover your background.")
}

func TestScore_LongResumePenalized(t *testing.T) {
	text := fullResume() + strings.Repeat("padding words to push past the upper band limit ", 200)

	report := Score(text, tenSkills(), "")

	// 10 (long) + 30 + 30 + 20 = 90.
	assert.Equal(t, 90, report.Score)
	assert.Contains(t, report.Feedback, "Resume is very long. Consider condensing to the most relevant content.")
}

func TestScore_MissingSectionsReduceScoreAndAddFeedback(t *testing.T) {
	// Experience and Skills only, no contact info, no detected skills,
	// too short: 5 + 12 + 5 + 0 = 22.
	report := Score("Experience and Skills", types.NewSkillSet(), "")

	assert.Equal(t, 22, report.Score)
	assert.Equal(t, types.ATSLow, report.Level)
	assert.Contains(t, report.Feedback, "Add a 'education' section to improve structure.")
	assert.Contains(t, report.Feedback, "Add a 'projects' section to improve structure.")
	assert.Contains(t, report.Feedback, "Add a 'contact' section to improve structure.")
	assert.Contains(t, report.Feedback, "No email address detected. Add one so recruiters can reach you.")
	assert.Contains(t, report.Feedback, "No phone number detected. Add one so recruiters can reach you.")
}

func TestScore_SkillDensityBands(t *testing.T) {
	base := fullResume()

	low := Score(base, types.NewSkillSet("python", "go"), "")
	mid := Score(base, types.NewSkillSet("a", "b", "c", "d", "e", "f"), "")
	high := Score(base, tenSkills(), "")

	// Bands award 5, 15, and 30 points respectively on an otherwise
	// identical resume.
	assert.Equal(t, 75, low.Score)
	assert.Equal(t, 85, mid.Score)
	assert.Equal(t, 100, high.Score)
	assert.Contains(t, low.Feedback, "Only 2 skills detected. List more relevant technologies.")
	assert.Contains(t, mid.Feedback, "6 skills detected. Consider adding a few more keywords.")
}

func TestScore_ContactPointsSplitEmailAndPhone(t *testing.T) {
	noPhone := strings.ReplaceAll(fullResume(), "(555) 123-4567", "")
	noEmail := strings.ReplaceAll(fullResume(), "jane.doe@example.com", "")

	assert.Equal(t, 90, Score(noPhone, tenSkills(), "").Score)
	assert.Equal(t, 90, Score(noEmail, tenSkills(), "").Score)
}

func TestScore_RoleLabelDoesNotAffectScore(t *testing.T) {
	withRole := Score(fullResume(), tenSkills(), "Backend Engineer")
	withoutRole := Score(fullResume(), tenSkills(), "")

	assert.Equal(t, withoutRole.Score, withRole.Score)
	assert.Equal(t, withoutRole.Feedback, withRole.Feedback)
}

func TestScore_EmptyResume(t *testing.T) {
	report := Score("", types.NewSkillSet(), "")

	// 5 (short) + 0 + 5 (zero skills band) + 0 = 10.
	assert.Equal(t, 10, report.Score)
	assert.Equal(t, types.ATSLow, report.Level)
}

func TestLevelFor_Boundaries(t *testing.T) {
	assert.Equal(t, types.ATSHigh, levelFor(80))
	assert.Equal(t, types.ATSMedium, levelFor(79))
	assert.Equal(t, types.ATSMedium, levelFor(51))
	assert.Equal(t, types.ATSLow, levelFor(50))
	assert.Equal(t, types.ATSLow, levelFor(0))
}
