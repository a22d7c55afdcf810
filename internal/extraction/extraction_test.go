package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/types"
)

func TestExtractSkills_LexiconOnly(t *testing.T) {
	lex := lexicon.Default()

	skills := ExtractSkills(lex, "Senior engineer with Python, Docker, and PostgreSQL", nil)

	assert.True(t, skills.Contains("python"))
	assert.True(t, skills.Contains("docker"))
	assert.True(t, skills.Contains("postgresql"))
	assert.Equal(t, 3, skills.Len())
}

func TestExtractSkills_UnionsEntitySkills(t *testing.T) {
	lex := lexicon.Default()
	entities := &types.LabeledEntities{
		Skills: []string{"Snowflake", "dbt"},
	}

	skills := ExtractSkills(lex, "Data pipelines in Python", entities)

	assert.True(t, skills.Contains("python"))
	assert.True(t, skills.Contains("snowflake"))
	assert.True(t, skills.Contains("dbt"))
}

func TestExtractSkills_DeduplicatesAcrossSources(t *testing.T) {
	lex := lexicon.Default()
	entities := &types.LabeledEntities{Skills: []string{"Python", "PYTHON"}}

	skills := ExtractSkills(lex, "python python python", entities)

	assert.Equal(t, 1, skills.Len())
	assert.True(t, skills.Contains("python"))
}

func TestExtractSkills_NilEntitiesTolerated(t *testing.T) {
	lex := lexicon.Default()

	skills := ExtractSkills(lex, "no recognizable technology here", nil)

	assert.Equal(t, 0, skills.Len())
}

func TestMissingSections_AllPresent(t *testing.T) {
	resume := `
Work Experience
Projects
Education
Technical Skills
Certifications
`
	assert.Empty(t, MissingSections(resume))
}

func TestMissingSections_ReportsAbsentInOrder(t *testing.T) {
	resume := "Experience at a startup. Education: BS in CS."

	missing := MissingSections(resume)

	assert.Equal(t, []string{SectionProjects, SectionSkills, SectionCertifications}, missing)
}

func TestMissingSections_AcceptsAliasKeywords(t *testing.T) {
	resume := "Employment history. Key Projects. Academic Background. Competencies. Courses completed."

	assert.Empty(t, MissingSections(resume))
}

func TestMissingSections_CaseInsensitive(t *testing.T) {
	resume := "EXPERIENCE PROJECTS EDUCATION SKILLS CERTIFICATIONS"

	assert.Empty(t, MissingSections(resume))
}

func TestMissingATSSections_ContactViaEmailKeyword(t *testing.T) {
	resume := "Experience. Education. Skills. Projects. Email: me@example.com"

	assert.Empty(t, MissingATSSections(resume))
}

func TestATSSectionCount_PartialResume(t *testing.T) {
	resume := "Experience and Skills only"

	assert.Equal(t, 2, ATSSectionCount(resume))
}

func TestATSSectionCount_EmptyText(t *testing.T) {
	assert.Equal(t, 0, ATSSectionCount(""))
}

func TestHasEmail_DetectsAddress(t *testing.T) {
	assert.True(t, HasEmail("Reach me at jane.doe+work@example.co.uk anytime"))
	assert.False(t, HasEmail("no address here"))
}

func TestHasPhone_ConsecutiveDigits(t *testing.T) {
	assert.True(t, HasPhone("Call 5551234567"))
	assert.False(t, HasPhone("Call 555-123"))
}

func TestHasPhone_ParenthesizedAreaCode(t *testing.T) {
	assert.True(t, HasPhone("Call (555) 123-4567"))
}

func TestCountWords_SplitsOnWhitespace(t *testing.T) {
	assert.Equal(t, 4, CountWords("one  two\tthree\nfour"))
	assert.Equal(t, 0, CountWords("   "))
}
