package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase trims s and title-cases each word, e.g. "tamil nadu" -> "Tamil Nadu".
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Casers keep state, so one is created per call
	return cases.Title(language.English).String(strings.ToLower(s))
}
