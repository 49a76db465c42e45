package strkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strkit"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []strkit.SlugOption
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "ampersand and punctuation",
			input:    "Hello & World!",
			expected: "hello-world",
		},
		{
			name:     "multiple spaces",
			input:    "Too    Many     Spaces",
			expected: "too-many-spaces",
		},
		{
			name:     "leading and trailing spaces",
			input:    "  Trim Me  ",
			expected: "trim-me",
		},
		{
			name:     "existing hyphens are kept",
			input:    "pre-sliced -- words",
			expected: "pre-sliced-words",
		},
		{
			name:     "underscore is a word character",
			input:    "foo_bar baz",
			expected: "foo_bar-baz",
		},
		{
			name:     "special characters stripped",
			input:    "Price: $99.99",
			expected: "price-9999",
		},
		{
			name:     "custom separator",
			input:    "Hello World",
			opts:     []strkit.SlugOption{strkit.Separator("_")},
			expected: "hello_world",
		},
		{
			name:     "regex metacharacter separator",
			input:    "  Hello   World  ",
			opts:     []strkit.SlugOption{strkit.Separator(".")},
			expected: "hello.world",
		},
		{
			name:     "multi-character adversarial separator",
			input:    "a b  c",
			opts:     []strkit.SlugOption{strkit.Separator("$1*")},
			expected: "a$1*b$1*c",
		},
		{
			name:     "lowercase disabled",
			input:    "Hello World",
			opts:     []strkit.SlugOption{strkit.Lowercase(false)},
			expected: "Hello-World",
		},
		{
			name:     "stop words removed",
			input:    "The Quick Brown Fox",
			opts:     []strkit.SlugOption{strkit.RemoveStopWords(true)},
			expected: "quick-brown-fox",
		},
		{
			name:     "stop words matched case-insensitively",
			input:    "An Apple AND a Pear",
			opts:     []strkit.SlugOption{strkit.RemoveStopWords(true)},
			expected: "apple-pear",
		},
		{
			name:     "stop words kept by default",
			input:    "The Quick Brown Fox",
			expected: "the-quick-brown-fox",
		},
		{
			name:     "diacritics folded",
			input:    "Café Résumé",
			expected: "cafe-resume",
		},
		{
			name:     "max length truncates on a separator",
			input:    "this is a very long title",
			opts:     []strkit.SlugOption{strkit.MaxLength(10)},
			expected: "this-is-a",
		},
		{
			name:     "max length larger than slug",
			input:    "short",
			opts:     []strkit.SlugOption{strkit.MaxLength(100)},
			expected: "short",
		},
		{
			name:     "only special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "empty separator joins words",
			input:    "Hello World",
			opts:     []strkit.SlugOption{strkit.Separator("")},
			expected: "helloworld",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := strkit.Slugify(tt.input, tt.opts...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSlugifySeparatorReuse(t *testing.T) {
	// Repeated calls with the same custom separator share a compiled
	// collapse pattern; results must stay stable across calls and
	// interleaved separators.
	for range 3 {
		assert.Equal(t, "a.b.c", strkit.Slugify("a  b   c", strkit.Separator(".")))
		assert.Equal(t, "a$1*b$1*c", strkit.Slugify("a  b   c", strkit.Separator("$1*")))
		assert.Equal(t, "a-b-c", strkit.Slugify("a  b   c"))
	}
}
