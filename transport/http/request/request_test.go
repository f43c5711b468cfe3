package request_test

import (
	"airline/shared/failure"
	"airline/transport/http/request"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/flights/x", nil)

	id, err := request.ID(withID(r, "0b6a2c1e-7f0e-4a59-9d3c-2f4a7c1b5e10"))
	require.NoError(t, err)
	assert.Equal(t, "0b6a2c1e-7f0e-4a59-9d3c-2f4a7c1b5e10", id)

	_, err = request.ID(withID(r, "not-a-uuid"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestRequired(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/flights/searchByAirline", nil)

	_, err := request.Required(r, "airline")
	require.Error(t, err)
	assert.Equal(t, "Required request parameter 'airline' is not present.", err.Error())
}

func TestTypedParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?price=299.99&isAvailable=false&start=2024-08-30T14:30:00Z&bad=abc", nil)

	price, err := request.Float(r, "price")
	require.NoError(t, err)
	assert.InDelta(t, 299.99, price, 0.0001)

	available, err := request.Bool(r, "isAvailable")
	require.NoError(t, err)
	assert.False(t, available)

	start, err := request.Time(r, "start")
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 8, 30, 14, 30, 0, 0, time.UTC)))

	_, err = request.Float(r, "bad")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = request.Time(r, "bad")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestOptionalUUID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?seatId=nope", nil)

	value, err := request.OptionalUUID(r, "passengerId")
	require.NoError(t, err)
	assert.Empty(t, value)

	_, err = request.OptionalUUID(r, "seatId")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
