package request

import (
	"airline/shared"
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/timezone"
	"airline/shared/validator"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func missing(name string) error {
	return failure.BadRequestFromString(fmt.Sprintf("Required request parameter '%s' is not present.", name)) //nolint:wrapcheck
}

func invalid(name, value string) error {
	return failure.BadRequestFromString(fmt.Sprintf("Invalid value '%s' for parameter '%s'.", value, name)) //nolint:wrapcheck
}

// ID reads the {id} path parameter and checks it is a UUID.
func ID(r *http.Request) (string, error) {
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, constant.RequestParamID, "required,uuid"); err != nil {
		return "", err
	}

	return id, nil
}

// Query reads an optional query parameter.
func Query(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}

// OptionalUUID reads an optional query parameter that must be a UUID when present.
func OptionalUUID(r *http.Request, name string) (string, error) {
	value := Query(r, name)
	if value == "" {
		return "", nil
	}

	if err := validator.ValidateVar(value, name, "uuid"); err != nil {
		return "", err
	}

	return value, nil
}

// Required reads a query parameter that must be present.
func Required(r *http.Request, name string) (string, error) {
	value := Query(r, name)
	if value == "" {
		return "", missing(name)
	}

	return value, nil
}

func Float(r *http.Request, name string) (float64, error) {
	value, err := Required(r, name)
	if err != nil {
		return 0, err
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, invalid(name, value)
	}

	return parsed, nil
}

func Bool(r *http.Request, name string) (bool, error) {
	value, err := Required(r, name)
	if err != nil {
		return false, err
	}

	parsed := shared.ConvertStringToBool(value)
	if parsed == nil {
		return false, invalid(name, value)
	}

	return *parsed, nil
}

// Time reads a zoned ISO-8601 timestamp.
func Time(r *http.Request, name string) (time.Time, error) {
	value, err := Required(r, name)
	if err != nil {
		return time.Time{}, err
	}

	parsed, err := timezone.ParseISO8601(value)
	if err != nil {
		return time.Time{}, invalid(name, value)
	}

	return parsed, nil
}
