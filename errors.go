package strkit

import (
	"errors"
	"fmt"
)

// ErrStringUtil is the root of the package's error taxonomy. Every error
// returned by this package matches it via errors.Is, so callers can handle
// all failures generically or narrow down to a specific kind below.
var ErrStringUtil = errors.New("strkit: string utility error")

// Error kinds. Each wraps ErrStringUtil so generic matching keeps working.
var (
	// ErrValidation reports invalid caller-supplied arguments: an
	// out-of-range length, an unrecognized enumerated option, or an empty
	// effective character set. Treat it as a caller bug.
	ErrValidation = fmt.Errorf("%w: validation", ErrStringUtil)

	// ErrCrypto reports that the underlying random source or digest/KDF
	// primitive failed, or that a salted-hash string was structurally
	// unparseable. Treat it as an environment fault.
	ErrCrypto = fmt.Errorf("%w: crypto", ErrStringUtil)
)

// Validation errors.
var (
	ErrInvalidCaseStyle = fmt.Errorf("%w: invalid case type", ErrValidation)
	ErrInvalidLength    = fmt.Errorf("%w: length must be at least 1", ErrValidation)
	ErrEmptyCharset     = fmt.Errorf("%w: effective character set is empty", ErrValidation)
)

// Crypto errors.
var (
	ErrUnsupportedAlgorithm = fmt.Errorf("%w: unsupported digest algorithm", ErrCrypto)
	ErrRandomSource         = fmt.Errorf("%w: random source failure", ErrCrypto)
	ErrMalformedHash        = fmt.Errorf("%w: malformed salted hash", ErrCrypto)
)

// ErrInvalidBase64 reports a malformed base64 payload. It is a base-kind
// error, not a validation error: broken base64 is malformed data, not a
// wrong-typed argument.
var ErrInvalidBase64 = fmt.Errorf("%w: invalid base64 string", ErrStringUtil)
