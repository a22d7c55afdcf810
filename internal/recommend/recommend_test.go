package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/matching"
	"github.com/hirelens/hirelens/internal/types"
)

func TestGenerate_MissingSkillTipsComeFirst(t *testing.T) {
	resume := types.NewSkillSet("python")
	required := types.NewSkillSet("python", "docker", "aws")
	match := matching.MatchSkills(resume, required)

	suggestions := Generate(match, types.JobRequirements{RequiredSkills: required}, nil)

	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Add projects demonstrating aws, docker.", suggestions[0])
	assert.Equal(t, "Consider acquiring certifications related to aws to validate your expertise.", suggestions[1])
}

func TestGenerate_TruncatesToTopThreeMissing(t *testing.T) {
	resume := types.NewSkillSet()
	required := types.NewSkillSet("ansible", "bash", "chef", "docker", "envoy")
	match := matching.MatchSkills(resume, required)

	suggestions := Generate(match, types.JobRequirements{RequiredSkills: required}, nil)

	assert.Equal(t, "Add projects demonstrating ansible, bash, chef and 2 others.", suggestions[0])
}

func TestGenerate_SectionTips(t *testing.T) {
	match := matching.MatchSkills(types.NewSkillSet("go"), types.NewSkillSet("go"))
	reqs := types.JobRequirements{RequiredExperienceYears: 3}

	suggestions := Generate(match, reqs, []string{"projects", "certifications", "experience"})

	assert.Contains(t, suggestions, "Add a 'Projects' section to showcase practical application of your skills.")
	assert.Contains(t, suggestions, "Include a 'Certifications' section if you have completed relevant courses.")
	assert.Contains(t, suggestions, "Ensure your 'Experience' section clearly outlines your roles and responsibilities.")
}

func TestGenerate_ExperienceTipOnlyWhenJobStatesMinimum(t *testing.T) {
	match := matching.MatchSkills(types.NewSkillSet("go"), types.NewSkillSet("go"))

	suggestions := Generate(match, types.JobRequirements{RequiredExperienceYears: 0}, []string{"experience"})

	for _, s := range suggestions {
		assert.NotContains(t, s, "'Experience' section")
	}
}

func TestGenerate_LowMatchTip(t *testing.T) {
	resume := types.NewSkillSet("python")
	required := types.NewSkillSet("python", "docker", "aws")
	match := matching.MatchSkills(resume, required)

	suggestions := Generate(match, types.JobRequirements{RequiredSkills: required}, nil)

	assert.Contains(t, suggestions, "Focus on hands-on practice with the required technologies to build a stronger portfolio.")
}

func TestGenerate_HighMatchTip(t *testing.T) {
	resume := types.NewSkillSet("python", "docker", "aws", "sql")
	required := types.NewSkillSet("python", "docker", "aws", "sql", "git")
	match := matching.MatchSkills(resume, required)

	suggestions := Generate(match, types.JobRequirements{RequiredSkills: required}, nil)

	assert.Contains(t, suggestions, "Excellent alignment! Ensure your summary highlights your strongest matching skills.")
}

func TestGenerate_ATSKeywordTipListsAtMostFive(t *testing.T) {
	required := types.NewSkillSet("ansible", "bash", "chef", "docker", "envoy", "flask")
	match := matching.MatchSkills(types.NewSkillSet(), required)

	suggestions := Generate(match, types.JobRequirements{RequiredSkills: required}, nil)

	last := suggestions[len(suggestions)-1]
	assert.Equal(t, "Ensure your resume explicitly mentions: ansible, bash, chef, docker, envoy to pass ATS filters.", last)
	assert.NotContains(t, last, "flask")
}

func TestGenerate_EmptyForPerfectMatch(t *testing.T) {
	skills := types.NewSkillSet("python", "docker")
	match := matching.MatchSkills(skills, skills)

	suggestions := Generate(match, types.JobRequirements{RequiredSkills: skills}, nil)

	// High-match tip still fires at 100%; a truly empty result needs no
	// missing skills, no missing sections, and a mid-range percentage.
	assert.Equal(t, []string{"Excellent alignment! Ensure your summary highlights your strongest matching skills."}, suggestions)
}

func TestGenerate_EmptyForMidRangeMatchWithoutGaps(t *testing.T) {
	match := types.MatchResult{
		MatchPercentage: 65,
		Matched:         types.NewSkillSet("python"),
		Missing:         types.NewSkillSet(),
		Extra:           types.NewSkillSet(),
	}

	suggestions := Generate(match, types.JobRequirements{}, nil)

	assert.Empty(t, suggestions)
}

func TestGenerate_DeterministicForIdenticalInputs(t *testing.T) {
	resume := types.NewSkillSet("python")
	required := types.NewSkillSet("zookeeper", "airflow", "kafka", "spark")
	match := matching.MatchSkills(resume, required)
	reqs := types.JobRequirements{RequiredSkills: required}

	first := Generate(match, reqs, []string{"projects"})
	second := Generate(match, reqs, []string{"projects"})

	assert.Equal(t, first, second)
}

func TestGenerate_NoDuplicates(t *testing.T) {
	required := types.NewSkillSet("docker", "aws")
	match := matching.MatchSkills(types.NewSkillSet(), required)

	suggestions := Generate(match, types.JobRequirements{RequiredSkills: required}, []string{"projects", "certifications"})

	seen := make(map[string]bool)
	for _, s := range suggestions {
		assert.False(t, seen[s], "duplicate suggestion: %s", s)
		seen[s] = true
	}
}

func TestFitScoreFor_Buckets(t *testing.T) {
	assert.Equal(t, types.FitExcellent, FitScoreFor(100))
	assert.Equal(t, types.FitExcellent, FitScoreFor(75))
	assert.Equal(t, types.FitGood, FitScoreFor(74.99))
	assert.Equal(t, types.FitGood, FitScoreFor(50))
	assert.Equal(t, types.FitFair, FitScoreFor(49.99))
	assert.Equal(t, types.FitFair, FitScoreFor(0))
}

func TestReport_EndToEnd(t *testing.T) {
	lex := lexicon.Default()
	resume := `Experience
Built services in Python and Flask.
Education: BS Computer Science
Skills: Python, Flask, Git
Projects: several
Certifications: none yet
`
	job := "Looking for 3+ years of experience with Python, Flask, Docker, and AWS."

	report := Report(lex, resume, job, nil)

	assert.Equal(t, 3, report.RequiredExperience)
	assert.Equal(t, []string{"flask", "python"}, report.Match.Matched.Sorted())
	assert.Equal(t, []string{"aws", "docker"}, report.Match.Missing.Sorted())
	assert.Equal(t, 50.0, report.Match.MatchPercentage)
	assert.Equal(t, types.FitGood, report.FitScore)
	assert.Empty(t, report.MissingResumeSection)
	assert.NotEmpty(t, report.Recommendations)
}

func TestReport_PerfectMatchHasNoGapSuggestions(t *testing.T) {
	lex := lexicon.Default()
	resume := `Experience: backend work with Python and Docker.
Projects, Education, Skills, Certifications all listed.
`
	job := "Must know Python and Docker."

	report := Report(lex, resume, job, nil)

	assert.Equal(t, 100.0, report.Match.MatchPercentage)
	assert.Equal(t, 0, report.Match.Missing.Len())
	for _, s := range report.Recommendations {
		assert.False(t, strings.HasPrefix(s, "Add projects demonstrating"))
	}
}
