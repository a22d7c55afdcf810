package extraction

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// A phone number is ten or more consecutive digits, or a parenthesized
	// three-digit area code such as (555) 123-4567.
	phoneDigitsPattern = regexp.MustCompile(`\d{10,}`)
	phoneAreaPattern   = regexp.MustCompile(`\(\d{3}\)`)
)

// HasEmail reports whether text contains an email address.
func HasEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// HasPhone reports whether text contains a phone number.
func HasPhone(text string) bool {
	return phoneDigitsPattern.MatchString(text) || phoneAreaPattern.MatchString(text)
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
