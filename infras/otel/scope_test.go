package otel_test

import (
	"airline/infras/otel"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "reservation.Create")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"seatId":    "1",
		"available": true,
		"count":     2,
		"ids":       []string{"a", "b"},
		"other":     1.5,
	})
	scope.AddEvent("seat claimed")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("seat not available"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	ended := spans[0]
	assert.Equal(t, "reservation.Create", ended.Name())
	assert.Equal(t, codes.Error, ended.Status().Code)
	assert.Equal(t, "seat not available", ended.Status().Description)
	assert.Len(t, ended.Attributes(), 5)
	// one event for AddEvent, one for the recorded error
	assert.Len(t, ended.Events(), 2)
}
