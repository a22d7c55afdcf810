// Package observability provides formatted report output for verbose CLI
// mode.
package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelens/hirelens/internal/types"
)

func TestPrintGapReport_FullReport(t *testing.T) {
	var buf bytes.Buffer
	report := &types.GapReport{
		Match: types.MatchResult{
			MatchPercentage: 66.67,
			Matched:         types.NewSkillSet("python", "sql"),
			Missing:         types.NewSkillSet("docker"),
			Extra:           types.NewSkillSet("git"),
			TotalRequired:   3,
			TotalMatched:    2,
			TotalMissing:    1,
		},
		RequiredExperience:   3,
		Recommendations:      []string{"Add projects demonstrating docker."},
		FitScore:             types.FitGood,
		MissingResumeSection: nil,
	}

	NewPrinter(&buf).PrintGapReport(report)
	output := buf.String()

	assert.Contains(t, output, "GAP ANALYSIS REPORT")
	assert.Contains(t, output, "Overall Fit: Good")
	assert.Contains(t, output, "Match Percentage: 66.67%")
	assert.Contains(t, output, "Matched Skills: 2/3")
	assert.Contains(t, output, "Required Experience: 3 years")
	assert.Contains(t, output, "  + python")
	assert.Contains(t, output, "  + sql")
	assert.Contains(t, output, "  - docker")
	assert.Contains(t, output, "  * git")
	assert.Contains(t, output, "  1. Add projects demonstrating docker.")
}

func TestPrintGapReport_SkipsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	report := &types.GapReport{
		Match: types.MatchResult{
			MatchPercentage: 100,
			Matched:         types.NewSkillSet("go"),
			Missing:         types.NewSkillSet(),
			Extra:           types.NewSkillSet(),
			TotalRequired:   1,
			TotalMatched:    1,
		},
		FitScore: types.FitExcellent,
	}

	NewPrinter(&buf).PrintGapReport(report)
	output := buf.String()

	assert.NotContains(t, output, "MISSING SKILLS:")
	assert.NotContains(t, output, "ADDITIONAL SKILLS")
	assert.NotContains(t, output, "Required Experience")
}

func TestPrintGapReport_CapsExtraSkillsAtTen(t *testing.T) {
	var buf bytes.Buffer
	extra := types.NewSkillSet(
		"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j10", "k11", "l12",
	)
	report := &types.GapReport{
		Match: types.MatchResult{Extra: extra, Matched: types.NewSkillSet(), Missing: types.NewSkillSet()},
	}

	NewPrinter(&buf).PrintGapReport(report)
	output := buf.String()

	assert.Contains(t, output, "* a1")
	assert.NotContains(t, output, "* l12")
}

func TestPrintGapReport_NilReportWritesNothing(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintGapReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintATSReport_Output(t *testing.T) {
	var buf bytes.Buffer
	report := &types.ATSReport{
		Score:    85,
		Level:    types.ATSHigh,
		Feedback: []string{"Resume length is in a good range."},
	}

	NewPrinter(&buf).PrintATSReport(report)
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE REPORT")
	assert.Contains(t, output, "Score: 85/100 (High)")
	assert.Contains(t, output, "  - Resume length is in a good range.")
}

func TestPrintRanking_Output(t *testing.T) {
	var buf bytes.Buffer
	result := &types.RankingResult{
		CandidateID: "cand-1",
		JobID:       "job-9",
		TotalScore:  72.5,
		Label:       types.Suitable,
		Components: types.RankingComponents{
			SkillScore:          60,
			ExperienceScore:     80,
			RoleConfidenceScore: 90,
			ATSScore:            55,
		},
		MissingSkills: []string{"docker", "aws"},
	}

	NewPrinter(&buf).PrintRanking(result)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE RANKING")
	assert.Contains(t, output, "Candidate: cand-1  Job: job-9")
	assert.Contains(t, output, "Total Score: 72.50 (Suitable)")
	assert.Contains(t, output, "Skill Match:      60.00")
	assert.Contains(t, output, "Missing Skills: docker, aws")
}
