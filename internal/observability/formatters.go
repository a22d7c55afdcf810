// Package observability provides formatted report output for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hirelens/hirelens/internal/types"
)

const (
	// headerWidth is the width of section divider lines.
	headerWidth = 60
	// maxExtraSkillsToShow caps the additional-skills list.
	maxExtraSkillsToShow = 10
)

// Printer handles formatted report output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) divider(char string) {
	fmt.Fprintln(p.out, strings.Repeat(char, headerWidth))
}

// PrintGapReport outputs a human-readable gap analysis report.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	p.divider("=")
	fmt.Fprintln(p.out, "GAP ANALYSIS REPORT")
	p.divider("=")

	fmt.Fprintf(p.out, "\nOverall Fit: %s\n", report.FitScore)
	fmt.Fprintf(p.out, "Match Percentage: %.2f%%\n", report.Match.MatchPercentage)
	fmt.Fprintf(p.out, "Matched Skills: %d/%d\n", report.Match.TotalMatched, report.Match.TotalRequired)
	if report.RequiredExperience > 0 {
		fmt.Fprintf(p.out, "Required Experience: %d years\n", report.RequiredExperience)
	}

	fmt.Fprintln(p.out)
	p.divider("-")
	fmt.Fprintln(p.out, "MATCHED SKILLS:")
	for _, skill := range report.Match.Matched.Sorted() {
		fmt.Fprintf(p.out, "  + %s\n", skill)
	}

	if report.Match.Missing.Len() > 0 {
		p.divider("-")
		fmt.Fprintln(p.out, "MISSING SKILLS:")
		for _, skill := range report.Match.Missing.Sorted() {
			fmt.Fprintf(p.out, "  - %s\n", skill)
		}
	}

	if report.Match.Extra.Len() > 0 {
		p.divider("-")
		fmt.Fprintln(p.out, "ADDITIONAL SKILLS (not required but valuable):")
		extras := report.Match.Extra.Sorted()
		if len(extras) > maxExtraSkillsToShow {
			extras = extras[:maxExtraSkillsToShow]
		}
		for _, skill := range extras {
			fmt.Fprintf(p.out, "  * %s\n", skill)
		}
	}

	if len(report.Recommendations) > 0 {
		p.divider("-")
		fmt.Fprintln(p.out, "RECOMMENDATIONS:")
		for i, rec := range report.Recommendations {
			fmt.Fprintf(p.out, "  %d. %s\n", i+1, rec)
		}
	}

	p.divider("=")
}

// PrintATSReport outputs a human-readable ATS score report.
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	p.divider("=")
	fmt.Fprintln(p.out, "ATS SCORE REPORT")
	p.divider("=")
	fmt.Fprintf(p.out, "\nScore: %d/100 (%s)\n\n", report.Score, report.Level)
	for _, line := range report.Feedback {
		fmt.Fprintf(p.out, "  - %s\n", line)
	}
	p.divider("=")
}

// PrintRanking outputs a human-readable ranking summary.
func (p *Printer) PrintRanking(result *types.RankingResult) {
	if result == nil {
		return
	}

	p.divider("=")
	fmt.Fprintln(p.out, "CANDIDATE RANKING")
	p.divider("=")
	fmt.Fprintf(p.out, "\nCandidate: %s  Job: %s\n", result.CandidateID, result.JobID)
	fmt.Fprintf(p.out, "Total Score: %.2f (%s)\n\n", result.TotalScore, result.Label)
	fmt.Fprintf(p.out, "  Skill Match:      %.2f\n", result.Components.SkillScore)
	fmt.Fprintf(p.out, "  Experience:       %.2f\n", result.Components.ExperienceScore)
	fmt.Fprintf(p.out, "  Role Confidence:  %.2f\n", result.Components.RoleConfidenceScore)
	fmt.Fprintf(p.out, "  ATS:              %.2f\n", result.Components.ATSScore)
	if len(result.MissingSkills) > 0 {
		fmt.Fprintf(p.out, "\nMissing Skills: %s\n", strings.Join(result.MissingSkills, ", "))
	}
	p.divider("=")
}
