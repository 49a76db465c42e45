package strkit_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/dmitrymomot/strkit"
)

func BenchmarkConvertCase(b *testing.B) {
	inputs := []string{
		"hello world test",
		"CamelCaseString",
		"snake_case_string",
		"Mixed-123-String",
	}

	for _, style := range []strkit.CaseStyle{strkit.CaseCamel, strkit.CaseSnake} {
		for _, s := range inputs {
			b.Run(string(style)+"/"+s, func(b *testing.B) {
				b.ResetTimer()
				for b.Loop() {
					_, _ = strkit.ConvertCase(s, style)
				}
			})
		}
	}
}

func BenchmarkSlugify(b *testing.B) {
	inputs := []string{
		"Hello World",
		"The Quick Brown Fox Jumps Over The Lazy Dog",
		"Café résumé naïve",
		strings.Repeat("word ", 100),
	}

	for _, s := range inputs {
		b.Run(s[:min(20, len(s))], func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = strkit.Slugify(s)
			}
		})
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	long := strings.Repeat("abcdefghij", 20)
	longVariant := strings.Repeat("abcdefghix", 20)

	b.Run("short", func(b *testing.B) {
		for b.Loop() {
			_ = strkit.Levenshtein("kitten", "sitting")
		}
	})

	b.Run("long", func(b *testing.B) {
		for b.Loop() {
			_ = strkit.Levenshtein(long, longVariant)
		}
	})
}

func BenchmarkRandomString(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		b.Run("len"+strconv.Itoa(n), func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_, _ = strkit.RandomString(n)
			}
		})
	}
}

func BenchmarkHashWithSalt(b *testing.B) {
	for b.Loop() {
		_, _ = strkit.HashWithSalt("benchmark password")
	}
}
