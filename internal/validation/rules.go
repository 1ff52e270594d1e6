// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/securenotes/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
// Like other string rules it skips the empty string, so pair it with validation.Required.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// RequiredText returns the rules for a mandatory free-text field: present, not blank
// and at most maxChars Unicode characters.
func RequiredText(field string, maxChars int) []validation.Rule {
	empty := fmt.Sprintf("%s must not be empty", field)
	return []validation.Rule{
		validation.Required.Error(empty),
		NotBlank.Error(empty),
		validation.RuneLength(0, maxChars).Error(fmt.Sprintf("%s must be at most %d characters", field, maxChars)),
	}
}
