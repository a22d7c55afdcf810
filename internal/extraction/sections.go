package extraction

import "strings"

// Section names used in gap analysis and suggestion text.
const (
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionContact        = "contact"
)

// section pairs a canonical name with header keywords that signal presence.
type section struct {
	name     string
	keywords []string
}

// resumeSections are the structural sections the gap analyzer checks,
// in report order.
var resumeSections = []section{
	{SectionExperience, []string{"experience", "work history", "employment"}},
	{SectionProjects, []string{"projects", "personal projects", "key projects"}},
	{SectionEducation, []string{"education", "academic background", "qualifications"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies", "technologies"}},
	{SectionCertifications, []string{"certifications", "certificates", "courses"}},
}

// atsSections are the sections the ATS rubric rewards, in feedback order.
var atsSections = []section{
	{SectionExperience, []string{"experience", "work history", "employment"}},
	{SectionEducation, []string{"education", "academic background", "qualifications"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies", "technologies"}},
	{SectionProjects, []string{"projects", "personal projects", "key projects"}},
	{SectionContact, []string{"contact", "email", "phone"}},
}

// MissingSections returns the structural resume sections whose header
// keywords never appear in text, in a fixed report order. Detection is a
// case-insensitive substring check, the same signal the ATS rubric uses.
func MissingSections(text string) []string {
	return missingFrom(resumeSections, text)
}

// MissingATSSections returns the ATS rubric sections absent from text.
func MissingATSSections(text string) []string {
	return missingFrom(atsSections, text)
}

// ATSSectionCount returns how many of the ATS rubric sections are present.
func ATSSectionCount(text string) int {
	return len(atsSections) - len(missingFrom(atsSections, text))
}

func missingFrom(sections []section, text string) []string {
	lower := strings.ToLower(text)
	var missing []string
	for _, sec := range sections {
		if !containsAny(lower, sec.keywords) {
			missing = append(missing, sec.name)
		}
	}
	return missing
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
