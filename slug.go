package strkit

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugOption configures the slug generation behavior.
type SlugOption func(*slugConfig)

type slugConfig struct {
	lowercase       bool
	separator       string
	removeStopWords bool
	maxLength       int
}

func defaultSlugConfig() *slugConfig {
	return &slugConfig{
		lowercase:       true,
		separator:       "-",
		removeStopWords: false,
		maxLength:       0, // no limit
	}
}

// Lowercase controls whether the slug is converted to lowercase.
// Default is true.
func Lowercase(enabled bool) SlugOption {
	return func(c *slugConfig) {
		c.lowercase = enabled
	}
}

// Separator sets the string inserted between words. Default is "-".
// The value is used verbatim; regex metacharacters are safe.
func Separator(s string) SlugOption {
	return func(c *slugConfig) {
		c.separator = s
	}
}

// RemoveStopWords controls whether common English stop words (a, an, the,
// and, or, but) are dropped before slugification. Default is false.
func RemoveStopWords(enabled bool) SlugOption {
	return func(c *slugConfig) {
		c.removeStopWords = enabled
	}
}

// MaxLength sets the maximum length of the generated slug in runes.
// A longer slug is truncated and any dangling separator is stripped.
func MaxLength(n int) SlugOption {
	return func(c *slugConfig) {
		c.maxLength = n
	}
}

// Stop words are matched case-insensitively on whole space-separated tokens.
var slugStopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
}

// Slugify converts s into a URL-safe slug: diacritics are folded to ASCII,
// characters other than word characters, whitespace and hyphens are stripped,
// and whitespace runs are replaced with the configured separator.
//
//	Slugify("Hello & World!")                          // "hello-world"
//	Slugify("Hello World", Separator("_"))             // "hello_world"
//	Slugify("The Quick Brown Fox", RemoveStopWords(true)) // "quick-brown-fox"
func Slugify(s string, opts ...SlugOption) string {
	cfg := defaultSlugConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.lowercase {
		s = strings.ToLower(s)
	}

	if cfg.removeStopWords {
		words := strings.Split(s, " ")
		kept := words[:0]
		for _, w := range words {
			if _, stop := slugStopWords[strings.ToLower(w)]; !stop {
				kept = append(kept, w)
			}
		}
		s = strings.Join(kept, " ")
	}

	s = foldDiacritics(s)
	s = nonSlugRegex.ReplaceAllString(s, "")
	s = whitespaceRegex.ReplaceAllLiteralString(s, cfg.separator)

	if sep := cfg.separator; sep != "" {
		s = collapseRegexFor(sep).ReplaceAllLiteralString(s, sep)
		s = strings.TrimPrefix(s, sep)
		s = strings.TrimSuffix(s, sep)
	}

	if cfg.maxLength > 0 {
		if r := []rune(s); len(r) > cfg.maxLength {
			s = string(r[:cfg.maxLength])
			if cfg.separator != "" {
				s = strings.TrimSuffix(s, cfg.separator)
			}
		}
	}

	return s
}

// Compiled collapse patterns for non-default separators, keyed by separator.
var collapseCache sync.Map

// collapseRegexFor returns a pattern matching two or more consecutive
// separators. The default separator uses the shared precompiled pattern;
// others are compiled once and cached. QuoteMeta keeps adversarial
// separators (".", "*", ...) from being interpreted as pattern syntax.
func collapseRegexFor(sep string) *regexp.Regexp {
	if sep == "-" {
		return kebabCollapseRegex
	}
	if re, ok := collapseCache.Load(sep); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?:` + regexp.QuoteMeta(sep) + `){2,}`)
	collapseCache.Store(sep, re)
	return re
}

// foldDiacritics converts accented characters to their ASCII base form
// (é → e, ñ → n) by decomposing to NFD, dropping combining marks and
// recomposing. A transformer chain is built per call; the chained
// transformers carry internal state and are not safe to share.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
