package skim

import "strings"

// MaxArticleChars bounds the article text sent to the completion service.
// Truncation is a plain prefix cut with no word-boundary awareness.
const MaxArticleChars = 12000

// NormalizeText collapses every run of whitespace (including newlines) to a
// single space and trims leading/trailing whitespace.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ClampText truncates s to at most max characters by taking a prefix. The
// cut falls on a rune boundary, so the result is valid UTF-8 whenever the
// input is.
func ClampText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	// Byte length bounds rune count, so short strings need no counting.
	if len(s) <= max {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
