package exceptions

import (
	"errors"
	"fmt"
	"strings"

	"docpoint-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first failed validator tag into a
// client-facing sentence, falling back to a generic message for tags that
// have no mapped template.
func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientMissingDetails
	}

	fieldError := validationErrors[0]
	field := strings.ToLower(fieldError.Field())

	template, ok := constvars.CustomValidationErrorMessages[fieldError.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid", field)
	}
	if strings.Contains(template, "%s") {
		template = fmt.Sprintf(template, fieldError.Param())
	}
	return fmt.Sprintf("%s %s", field, template)
}
