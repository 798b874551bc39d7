package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// Messages for the validation tags the request DTOs carry. Unmapped tags fall
// back to the validator's own error text.
var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		msg := strings.ReplaceAll(template, "{field}", valErr.Field())

		return strings.ReplaceAll(msg, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
