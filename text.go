package strkit

import "strings"

// TrimExtraSpaces collapses every run of whitespace into a single space and
// strips leading and trailing whitespace.
func TrimExtraSpaces(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveSpecialChars strips every character that is not a word character
// (letters, digits, underscore). When allowSpaces is false, whitespace is
// stripped as well.
func RemoveSpecialChars(s string, allowSpaces bool) string {
	if allowSpaces {
		return nonWordRegex.ReplaceAllString(s, "")
	}
	return nonWordNoSpaceRegex.ReplaceAllString(s, "")
}

// WordCount reports the number of whitespace-separated words in s. Empty or
// all-whitespace input yields 0.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// IsPalindrome reports whether s reads the same forwards and backwards after
// stripping every character that is not an ASCII letter or digit. The
// comparison is case-insensitive unless caseSensitive is true.
func IsPalindrome(s string, caseSensitive bool) bool {
	cleaned := nonAlphanumericRegex.ReplaceAllString(s, "")
	if !caseSensitive {
		cleaned = strings.ToLower(cleaned)
	}
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}
