package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline/shared/failure"
	"airline/transport/http/response"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
		wantKind   string
		wantDetail string
		wantFields []string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("wrapped: %w", failure.NotFound("Seat not found with id 1")),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Resource Not Found",
			wantKind:   "ResourceNotFound",
			wantDetail: "Seat not found with id 1",
		},
		{
			name:       "illegal state is a 500",
			err:        failure.IllegalState("Seat with id 1 is not available."),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Illegal State",
			wantKind:   "IllegalState",
			wantDetail: "Seat with id 1 is not available.",
		},
		{
			name:       "validation carries fields",
			err:        failure.Validation("name is required", []string{"name"}, []string{"name is required"}),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Method Argument Not Valid",
			wantKind:   "MethodArgumentNotValid",
			wantDetail: "name is required",
			wantFields: []string{"name"},
		},
		{
			name:       "plain error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
			wantKind:   "InternalError",
			wantDetail: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var body response.Error
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

			assert.Equal(t, tt.wantTitle, body.Title)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantKind, body.ExceptionKind)
			assert.Equal(t, tt.wantDetail, body.Detail)
			assert.Equal(t, tt.wantFields, body.Fields)
			assert.Regexp(t, timestampPattern, body.Timestamp)
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":"1"}}`, recorder.Body.String())
}

func TestWithNoContent(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithNoContent(recorder)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}
