package strkit

import "regexp"

// Pre-compiled regular expressions shared across the package.
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Case conversion: a run of separators or whitespace followed by the
	// character that starts the next word.
	wordBoundaryRegex  = regexp.MustCompile(`[-_\s]+(.)`)
	trailingSepRegex   = regexp.MustCompile(`[-_\s]+$`)
	upperLetterRegex   = regexp.MustCompile(`([A-Z])`)
	snakeJoinRegex     = regexp.MustCompile(`[-\s]+`)
	kebabJoinRegex     = regexp.MustCompile(`[_\s]+`)
	snakeCollapseRegex = regexp.MustCompile(`_{2,}`)
	kebabCollapseRegex = regexp.MustCompile(`-{2,}`)

	// Character filtering
	nonWordRegex         = regexp.MustCompile(`[^\w\s]`)
	nonWordNoSpaceRegex  = regexp.MustCompile(`[^\w]`)
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

	// Slug generation: keep word characters, whitespace and hyphens.
	nonSlugRegex = regexp.MustCompile(`[^\w\s-]`)
)
