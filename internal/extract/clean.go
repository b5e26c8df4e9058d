package extract

import (
	"regexp"
	"strings"
)

var (
	// Whitespace as Unicode sees it, including NBSP and line separators.
	whitespaceRe = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+`)
	// Anything that is not a word character, whitespace or . , ! ? -
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?-]`)
)

// CleanText collapses whitespace runs to a single space, then drops every
// character outside word characters, whitespace and ". , ! ? -".
func CleanText(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = disallowedRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Truncate cuts s to maxLen runes and appends Ellipsis when it was longer.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + Ellipsis
}

// Cap cuts s to maxLen runes without a marker.
func Cap(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}
