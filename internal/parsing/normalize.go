// Package parsing provides text normalization, keyword extraction, and
// ordinal level extraction for resume and job-description text.
package parsing

import (
	"regexp"
	"strings"
)

var (
	// Everything that is not a word character, whitespace, hyphen, or period
	// is noise and becomes a space. Word characters include Unicode letters
	// and digits, so accented names and skills survive normalization.
	reSpecial = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.]`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces non-semantic punctuation with spaces,
// and collapses runs of whitespace. Empty input returns an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = reSpecial.ReplaceAllString(text, " ")
	text = reSpaces.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
