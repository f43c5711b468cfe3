package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gt":       "{field} must be greater than {param}",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"uuid":     "{field} must be a valid UUID",
		"numeric":  "{field} must contain digits only",
	}
)

func fieldMessage(valErr val.FieldError, name string) string {
	msg := messages[valErr.Tag()]
	if msg == "" {
		return valErr.Error()
	}

	msg = strings.ReplaceAll(msg, "{field}", name)

	return strings.ReplaceAll(msg, "{param}", valErr.Param())
}

// details splits a validation error into the offending field names and a message per field.
// A non-empty name overrides the field name, which is how single variables get labelled.
func details(err error, name string) (fields []string, fieldMessages []string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil, []string{err.Error()}
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		if name != "" {
			field = name
		}

		fields = append(fields, field)
		fieldMessages = append(fieldMessages, fieldMessage(valErr, field))
	}

	return fields, fieldMessages
}
