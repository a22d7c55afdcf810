// Package ingestion reads resume and job posting documents from files and
// URLs and produces cleaned plain text ready for analysis.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpacePattern = regexp.MustCompile(`[ \t]+`)
	multiBlankPattern = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw document text: line endings become LF, runs of
// spaces collapse, trailing whitespace is stripped, and blank runs shrink to
// at most one empty line. Structure (line breaks) is preserved so section
// headers stay detectable.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		line = multiSpacePattern.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
