package strkit

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// HashAlgorithm selects the digest function Hash computes.
type HashAlgorithm string

const (
	MD5    HashAlgorithm = "md5"
	SHA256 HashAlgorithm = "sha256"
	SHA512 HashAlgorithm = "sha512"
)

const (
	// DefaultRounds is the PBKDF2 iteration count used by HashWithSalt when
	// no Rounds option is given, and always by VerifyHash.
	DefaultRounds = 10

	saltSize       = 16
	derivedKeySize = 64
)

// Hash computes the selected digest over the UTF-8 bytes of s and returns it
// as lowercase hexadecimal. An unsupported algorithm fails with
// ErrUnsupportedAlgorithm.
func Hash(s string, algorithm HashAlgorithm) (string, error) {
	var sum []byte
	switch algorithm {
	case MD5:
		h := md5.Sum([]byte(s))
		sum = h[:]
	case SHA256:
		h := sha256.Sum256([]byte(s))
		sum = h[:]
	case SHA512:
		h := sha512.Sum512([]byte(s))
		sum = h[:]
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return hex.EncodeToString(sum), nil
}

// HashOption configures salted hash creation.
type HashOption func(*hashConfig)

type hashConfig struct {
	rounds int
}

// Rounds sets the PBKDF2 iteration count used when creating a salted hash.
// Default is DefaultRounds.
//
// VerifyHash always re-derives with DefaultRounds, so hashes created with a
// different round count will not verify. See VerifyHash.
func Rounds(n int) HashOption {
	return func(c *hashConfig) {
		c.rounds = n
	}
}

// HashWithSalt derives a salted hash of s suitable for storage. A fresh
// 16-byte salt is drawn from the cryptographically secure random source and
// a 64-byte key is derived via PBKDF2-HMAC-SHA512. The result is
// "<saltHex>:<keyHex>"; splitting on the first ":" always recovers exactly
// two non-empty hex fields.
func HashWithSalt(s string, opts ...HashOption) (string, error) {
	cfg := &hashConfig{rounds: DefaultRounds}
	for _, opt := range opts {
		opt(cfg)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}

	// The hex-encoded salt, not the raw bytes, feeds the KDF. The encoded
	// string is the stored artifact and verification re-derives from it.
	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(s), []byte(saltHex), cfg.rounds, derivedKeySize, sha512.New)

	return saltHex + ":" + hex.EncodeToString(key), nil
}

// VerifyHash reports whether s matches a salted hash previously produced by
// HashWithSalt. A false result means credential mismatch; a non-nil error
// means the comparison could not be performed because encoded is
// structurally unparseable (missing separator, empty or non-hex fields).
//
// Re-derivation always uses DefaultRounds regardless of the round count the
// hash was created with. A hash created via Rounds with any other count will
// never verify; this quirk is preserved intentionally for compatibility with
// existing stored hashes.
func VerifyHash(s, encoded string) (bool, error) {
	saltHex, wantHex, ok := strings.Cut(encoded, ":")
	if !ok || saltHex == "" || wantHex == "" {
		return false, ErrMalformedHash
	}
	if _, err := hex.DecodeString(saltHex); err != nil {
		return false, errors.Join(ErrMalformedHash, err)
	}
	if _, err := hex.DecodeString(wantHex); err != nil {
		return false, errors.Join(ErrMalformedHash, err)
	}

	key := pbkdf2.Key([]byte(s), []byte(saltHex), DefaultRounds, derivedKeySize, sha512.New)
	derivedHex := hex.EncodeToString(key)

	return subtle.ConstantTimeCompare([]byte(derivedHex), []byte(wantHex)) == 1, nil
}
