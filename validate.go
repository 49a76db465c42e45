package strkit

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// validateCaseStyle checks that the requested style is one of the supported
// enumerated variants.
func validateCaseStyle(style CaseStyle) error {
	err := validation.Validate(string(style),
		validation.Required,
		validation.In(string(CaseCamel), string(CasePascal), string(CaseSnake), string(CaseKebab)),
	)
	if err != nil {
		return errors.Join(ErrInvalidCaseStyle, err)
	}
	return nil
}

// validateLength checks that a requested output length is positive. Required
// rejects the zero value explicitly; threshold rules alone skip it as empty.
func validateLength(length int) error {
	if err := validation.Validate(length, validation.Required, validation.Min(1)); err != nil {
		return errors.Join(ErrInvalidLength, err)
	}
	return nil
}

// validateBase64 checks base64 syntax before any decode attempt so malformed
// payloads are reported uniformly, whether they fail the character set or the
// padding rules.
func validateBase64(s string) error {
	if err := validation.Validate(s, is.Base64); err != nil {
		return errors.Join(ErrInvalidBase64, err)
	}
	return nil
}
