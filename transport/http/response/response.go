package response

import (
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/logger"
	"airline/shared/timezone"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Error is the body of every failed request.
type Error struct {
	Title          string   `json:"title"`
	Status         int      `json:"status"`
	ExceptionKind  string   `json:"exceptionKind"`
	Detail         string   `json:"detail"`
	Timestamp      string   `json:"timestamp"`
	Fields         []string `json:"fields,omitempty"`
	FieldsMessages []string `json:"fieldsMessages,omitempty"`
}

// NewError builds the error body for err. Errors that are not a failure.Failure become a 500.
func NewError(err error) Error {
	body := Error{
		Title:         failure.GetKind(err).Title(),
		Status:        failure.GetCode(err),
		ExceptionKind: string(failure.GetKind(err)),
		Detail:        err.Error(),
		Timestamp:     timezone.Timestamp(timezone.Now()),
	}

	if fail, ok := failure.As(err); ok {
		body.Detail = fail.Message
		body.Fields = fail.Fields
		body.FieldsMessages = fail.FieldMessages
	}

	return body
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError sends the structured error body for err
func WithError(writer http.ResponseWriter, err error) {
	body := NewError(err)

	if body.Status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("kind", body.ExceptionKind).Msg("request failed")
	}

	response(writer, body.Status, body)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
