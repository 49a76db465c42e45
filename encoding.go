package strkit

import (
	"encoding/base64"
	"errors"
)

// Base64Encode encodes the UTF-8 bytes of s as standard base64.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes a standard base64 string back to text. The input is
// checked syntactically before decoding; both a format violation and a
// decode failure fail with ErrInvalidBase64.
func Base64Decode(s string) (string, error) {
	if err := validateBase64(s); err != nil {
		return "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", errors.Join(ErrInvalidBase64, err)
	}

	return string(decoded), nil
}
