package strkit

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CaseStyle selects the naming convention ConvertCase rewrites into.
type CaseStyle string

const (
	CaseCamel  CaseStyle = "camel"
	CasePascal CaseStyle = "pascal"
	CaseSnake  CaseStyle = "snake"
	CaseKebab  CaseStyle = "kebab"
)

// Capitalize upper-cases the first character of s and leaves the remainder
// untouched. The remainder is deliberately not lower-cased. Empty input is
// returned unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// ConvertCase rewrites a token-ish string into the requested naming style.
// Runs of hyphens, underscores and whitespace are treated as word boundaries.
// An unrecognized style fails with ErrInvalidCaseStyle.
func ConvertCase(s string, style CaseStyle) (string, error) {
	if err := validateCaseStyle(style); err != nil {
		return "", err
	}

	switch style {
	case CaseCamel:
		return flipFirst(collapseBoundaries(s), unicode.ToLower), nil
	case CasePascal:
		return flipFirst(collapseBoundaries(s), unicode.ToUpper), nil
	case CaseSnake:
		return toDelimited(s, "_", snakeJoinRegex, snakeCollapseRegex), nil
	default:
		return toDelimited(s, "-", kebabJoinRegex, kebabCollapseRegex), nil
	}
}

// collapseBoundaries drops separator runs and upper-cases the character that
// follows each of them. The case of all other characters is preserved.
func collapseBoundaries(s string) string {
	s = trailingSepRegex.ReplaceAllString(s, "")
	return wordBoundaryRegex.ReplaceAllStringFunc(s, func(m string) string {
		r, _ := utf8.DecodeLastRuneInString(m)
		return string(unicode.ToUpper(r))
	})
}

// flipFirst rewrites the first rune of s with fn, leaving the rest as is.
func flipFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(fn(r)) + s[size:]
}

// toDelimited inserts sep before every upper-case letter, folds whitespace
// and the other separator into sep, lower-cases the result, collapses
// repeated separators and strips a leading one.
func toDelimited(s, sep string, joinRe, collapseRe *regexp.Regexp) string {
	s = upperLetterRegex.ReplaceAllString(s, sep+"$1")
	s = joinRe.ReplaceAllString(s, sep)
	s = strings.ToLower(s)
	s = collapseRe.ReplaceAllString(s, sep)
	return strings.TrimPrefix(s, sep)
}
