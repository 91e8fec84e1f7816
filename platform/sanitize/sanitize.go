// Package sanitize provides text sanitization utilities for user input.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// searchPunctuationRegex matches the punctuation stripped from free-text
	// search input before it reaches the wire.
	searchPunctuationRegex = regexp.MustCompile(`['";\\/*<>&|^$~@!{}\[\]()=+]`)
)

// maxSearchLength caps free-text search input.
const maxSearchLength = 50

// SearchText sanitizes a free-text search query: strips risky punctuation,
// collapses surrounding whitespace and truncates to the input cap.
func SearchText(s string) string {
	result := searchPunctuationRegex.ReplaceAllString(s, "")
	result = strings.TrimSpace(result)
	if len(result) > maxSearchLength {
		result = result[:maxSearchLength]
	}
	return result
}
