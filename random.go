package strkit

import (
	"crypto/rand"
	"errors"
	"strings"
)

// Character classes for random string generation, concatenated in a fixed
// order (uppercase, lowercase, numbers, symbols) when enabled.
const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// RandomOption configures the character classes RandomString draws from.
type RandomOption func(*randomConfig)

type randomConfig struct {
	numbers   bool
	symbols   bool
	uppercase bool
	lowercase bool
}

func defaultRandomConfig() *randomConfig {
	return &randomConfig{
		numbers:   true,
		symbols:   false,
		uppercase: true,
		lowercase: true,
	}
}

// IncludeNumbers controls whether digits are part of the alphabet.
// Default is true.
func IncludeNumbers(enabled bool) RandomOption {
	return func(c *randomConfig) {
		c.numbers = enabled
	}
}

// IncludeSymbols controls whether punctuation is part of the alphabet.
// Default is false.
func IncludeSymbols(enabled bool) RandomOption {
	return func(c *randomConfig) {
		c.symbols = enabled
	}
}

// IncludeUppercase controls whether uppercase letters are part of the
// alphabet. Default is true.
func IncludeUppercase(enabled bool) RandomOption {
	return func(c *randomConfig) {
		c.uppercase = enabled
	}
}

// IncludeLowercase controls whether lowercase letters are part of the
// alphabet. Default is true.
func IncludeLowercase(enabled bool) RandomOption {
	return func(c *randomConfig) {
		c.lowercase = enabled
	}
}

// RandomString generates a string of exactly length characters drawn from a
// cryptographically secure random source. The alphabet is assembled from the
// enabled character classes; disabling all of them fails with
// ErrEmptyCharset, and length < 1 fails with ErrInvalidLength.
func RandomString(length int, opts ...RandomOption) (string, error) {
	if err := validateLength(length); err != nil {
		return "", err
	}

	cfg := defaultRandomConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var alphabet strings.Builder
	if cfg.uppercase {
		alphabet.WriteString(uppercaseChars)
	}
	if cfg.lowercase {
		alphabet.WriteString(lowercaseChars)
	}
	if cfg.numbers {
		alphabet.WriteString(numberChars)
	}
	if cfg.symbols {
		alphabet.WriteString(symbolChars)
	}

	chars := alphabet.String()
	if chars == "" {
		return "", ErrEmptyCharset
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}

	for i := range buf {
		buf[i] = chars[buf[i]%byte(len(chars))]
	}

	return string(buf), nil
}
