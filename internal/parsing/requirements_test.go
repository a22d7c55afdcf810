package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelens/hirelens/internal/lexicon"
)

func TestParseJobRequirements_SkillsAndExperience(t *testing.T) {
	lex := lexicon.Default()
	job := "We need 5+ years of experience with Python, Django, and PostgreSQL."

	reqs := ParseJobRequirements(lex, job)

	assert.Equal(t, 5, reqs.RequiredExperienceYears)
	assert.True(t, reqs.RequiredSkills.Contains("python"))
	assert.True(t, reqs.RequiredSkills.Contains("django"))
	assert.True(t, reqs.RequiredSkills.Contains("postgresql"))
	assert.Equal(t, job, reqs.SourceText)
}

func TestParseJobRequirements_NoExperienceStated(t *testing.T) {
	lex := lexicon.Default()

	reqs := ParseJobRequirements(lex, "Junior role working with SQL and Git.")

	assert.Equal(t, 0, reqs.RequiredExperienceYears)
	assert.True(t, reqs.RequiredSkills.Contains("sql"))
}

func TestParseJobRequirements_NoSkillsFound(t *testing.T) {
	lex := lexicon.Default()

	reqs := ParseJobRequirements(lex, "General office duties, 2 years experience.")

	assert.Equal(t, 0, reqs.RequiredSkills.Len())
	assert.Equal(t, 2, reqs.RequiredExperienceYears)
}

func TestParseExperienceYears_Variants(t *testing.T) {
	assert.Equal(t, 3, ParseExperienceYears("3+ years of experience"))
	assert.Equal(t, 5, ParseExperienceYears("5 yrs exp in backend work"))
	assert.Equal(t, 2, ParseExperienceYears("2 years experience shipping APIs"))
	assert.Equal(t, 7, ParseExperienceYears("7 Years Of Experience"))
	assert.Equal(t, 1, ParseExperienceYears("1 yr of experience"))
}

func TestParseExperienceYears_FirstMentionWins(t *testing.T) {
	text := "4 years of experience required; 10 years of experience preferred"

	assert.Equal(t, 4, ParseExperienceYears(text))
}

func TestParseExperienceYears_NoMatchDefaultsToZero(t *testing.T) {
	assert.Equal(t, 0, ParseExperienceYears("extensive background in engineering"))
	assert.Equal(t, 0, ParseExperienceYears(""))
}

func TestParseExperienceYears_YearsWithoutExperienceWordIgnored(t *testing.T) {
	// "years" followed by something other than experience/exp must not match.
	assert.Equal(t, 0, ParseExperienceYears("graduated 3 years ago"))
}
