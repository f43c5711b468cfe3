package validator

import (
	"airline/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		fields, fieldMessages := details(err, "")

		return failure.Validation(strings.Join(fieldMessages, "; "), fields, fieldMessages) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value, naming it in the message.
func ValidateVar(field any, name, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		_, fieldMessages := details(err, name)

		return failure.BadRequestFromString(strings.Join(fieldMessages, "; ")) //nolint:wrapcheck
	}

	return nil
}
