package tracing

import (
	"context"
	"testing"

	"github.com/pribylovaa/go-filmorate/internal/config"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// Без endpoint провайдер не регистрируется, shutdown — no-op даже с отменённым контекстом.
func TestSetup_NoopWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TracingConfig{ServiceName: "filmorate", SampleRatio: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, shutdown(ctx))
}

// С endpoint провайдер создаётся; недоступный коллектор не мешает остановке.
func TestSetup_WithEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TracingConfig{
		Endpoint:    "http://192.0.2.1:4318",
		ServiceName: "filmorate-test",
		SampleRatio: 1,
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

// Спаны получают service.name из конфигурации.
func TestNewProvider_ServiceName(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp, err := NewProvider(context.Background(),
		config.TracingConfig{ServiceName: "filmorate-test", SampleRatio: 1},
		sdktrace.WithSpanProcessor(rec),
	)
	require.NoError(t, err)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)

	var service string
	for _, kv := range ended[0].Resource().Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	require.Equal(t, "filmorate-test", service)
}

// Нулевая доля сэмплирования отбрасывает корневые спаны.
func TestNewProvider_SampleRatioZero(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp, err := NewProvider(context.Background(),
		config.TracingConfig{ServiceName: "filmorate", SampleRatio: 0},
		sdktrace.WithSpanProcessor(rec),
	)
	require.NoError(t, err)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	require.Empty(t, rec.Ended())
}
