package failure

import (
	"errors"
	"net/http"
)

// Kind names the class of a failure as reported in the error body.
type Kind string

const (
	KindBadRequest       Kind = "BadRequest"
	KindValidation       Kind = "MethodArgumentNotValid"
	KindUnauthorized     Kind = "Unauthorized"
	KindForbidden        Kind = "Forbidden"
	KindNotFound         Kind = "ResourceNotFound"
	KindMethodNotAllowed Kind = "MethodNotAllowed"
	KindDataIntegrity    Kind = "DataIntegrityViolation"
	KindIllegalState     Kind = "IllegalState"
	KindInternal         Kind = "InternalError"
)

var titles = map[Kind]string{
	KindBadRequest:       "Bad Request",
	KindValidation:       "Method Argument Not Valid",
	KindUnauthorized:     "Unauthorized",
	KindForbidden:        "Forbidden",
	KindNotFound:         "Resource Not Found",
	KindMethodNotAllowed: "Method Not Allowed",
	KindDataIntegrity:    "Data Integrity Violation",
	KindIllegalState:     "Illegal State",
	KindInternal:         "Internal Server Error",
}

// Title returns the human readable title of the kind.
func (k Kind) Title() string {
	if title, ok := titles[k]; ok {
		return title
	}

	return titles[KindInternal]
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code          int      `json:"code"`
	Kind          Kind     `json:"kind"`
	Message       string   `json:"message"`
	Fields        []string `json:"fields,omitempty"`
	FieldMessages []string `json:"fieldMessages,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// Validation returns a bad request carrying the offending fields and their messages.
func Validation(msg string, fields, fieldMessages []string) error {
	return &Failure{
		Code:          http.StatusBadRequest,
		Kind:          KindValidation,
		Message:       msg,
		Fields:        fields,
		FieldMessages: fieldMessages,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: msg,
	}
}

// DataIntegrity reports a violated uniqueness or reference rule. It is served as a 500.
func DataIntegrity(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindDataIntegrity,
		Message: msg,
	}
}

// IllegalState reports an operation that the current entity state does not allow. It is served as a 500.
func IllegalState(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindIllegalState,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

func MethodNotAllowed(msg string) error {
	return &Failure{
		Code:    http.StatusMethodNotAllowed,
		Kind:    KindMethodNotAllowed,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface, InternalError when it is not a Failure.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// As extracts the Failure carried by err.
func As(err error) (*Failure, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail, true
	}

	return nil, false
}

// IsKind reports whether err carries a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
