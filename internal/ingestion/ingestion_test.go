package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "one\ntwo\nthree", CleanText("one\r\ntwo\rthree"))
}

func TestCleanText_CollapsesSpacesAndTabs(t *testing.T) {
	assert.Equal(t, "skills: go and sql", CleanText("skills:   go \t and  sql"))
}

func TestCleanText_LimitsBlankRunsToOne(t *testing.T) {
	assert.Equal(t, "Experience\n\nEducation", CleanText("Experience\n\n\n\n\nEducation"))
}

func TestCleanText_StripsTrailingWhitespacePerLine(t *testing.T) {
	assert.Equal(t, "header\nbody", CleanText("header   \nbody\t\t"))
}

func TestCleanText_PreservesSingleLineBreaks(t *testing.T) {
	input := "Experience\nBuilt things\nEducation\nBS CS"

	assert.Equal(t, input, CleanText(input))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\n  \t "))
}

func TestReadDocument_PlainTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Experience\r\n\r\n\r\nSkills:  Go"), 0o644))

	text, err := ReadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, "Experience\n\nSkills: Go", text)
}

func TestReadDocument_UnknownExtensionTreatedAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("# Resume\nSkills"), 0o644))

	text, err := ReadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, "# Resume\nSkills", text)
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := ReadDocument("/nonexistent/resume.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestReadDocument_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	_, err := ReadDocument(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read pdf")
}

func TestReadDocument_CorruptDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := ReadDocument(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse docx")
}
