package utils

import "strings"

// Normalize lower-cases and trims a user message the same way the parser and
// the conversation engine expect to see it.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// ContainsAny reports whether msg contains at least one of the keywords.
// msg is expected to be already normalized.
func ContainsAny(msg string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
