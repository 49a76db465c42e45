// Package strkit provides a collection of string manipulation utilities:
// case conversion, whitespace and character cleanup, similarity scoring,
// random string generation, hashing (plain and salted), base64
// encoding/decoding and slug generation.
//
// The functions are grouped conceptually into several areas:
//
//   - Text transforms – capitalization, naming-convention conversion
//     (camelCase, PascalCase, snake_case, kebab-case), whitespace
//     normalisation, special-character stripping, word counting and
//     palindrome detection.
//
//   - Similarity – Levenshtein edit distance and a percentage similarity
//     score derived from it.
//
//   - Randomness & hashing – cryptographically secure random strings with
//     configurable character classes, MD5/SHA-256/SHA-512 digests, and
//     salted PBKDF2-HMAC-SHA512 hashes with verification.
//
//   - Encoding – standard base64 encoding and validated decoding.
//
//   - Slugs – URL-safe slug generation with diacritic folding, configurable
//     separators and optional stop-word removal.
//
// # Usage
//
//	import "github.com/dmitrymomot/strkit"
//
//	out, err := strkit.ConvertCase("hello world", strkit.CaseCamel)
//	// out: "helloWorld"
//
//	s := strkit.Slugify("Hello & World!")
//	// s: "hello-world"
//
//	encoded, err := strkit.HashWithSalt("secret")
//	ok, err := strkit.VerifyHash("secret", encoded)
//	// ok: true
//
// # Error Handling
//
// All failures derive from a three-level taxonomy rooted at ErrStringUtil,
// so callers can match generically or narrow down with errors.Is:
//
//	if errors.Is(err, strkit.ErrValidation) {
//		// caller bug: bad argument, bad option, empty alphabet
//	}
//	if errors.Is(err, strkit.ErrCrypto) {
//		// environment fault: random source, digest primitive, unparseable hash
//	}
//	if errors.Is(err, strkit.ErrStringUtil) {
//		// any failure from this package
//	}
//
// VerifyHash is the one operation with a meaningful false return: false means
// the credential does not match, while an error means the comparison could
// not be performed at all.
//
// # Thread Safety
//
// The package is completely stateless; every function is safe for concurrent
// use. Random data is drawn from crypto/rand.
package strkit
