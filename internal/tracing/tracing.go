// tracing настраивает OpenTelemetry для filmorate.
//
// Экспорт включается только при заданном tracing.endpoint: тогда глобально
// регистрируется TracerProvider с OTLP/HTTP-экспортёром и пропагатором W3C Trace Context.
// Иначе остаётся no-op провайдер по умолчанию.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/pribylovaa/go-filmorate/internal/config"
)

// ShutdownFunc сбрасывает накопленные спаны и останавливает провайдер.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// Setup регистрирует глобальный TracerProvider по конфигурации.
// Возвращаемую функцию нужно вызвать при остановке процесса.
func Setup(ctx context.Context, cfg config.TracingConfig) (ShutdownFunc, error) {
	const op = "tracing/Setup"

	if cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("%s: %w", op, err)
	}

	tp, err := NewProvider(ctx, cfg, sdktrace.WithBatcher(exporter))
	if err != nil {
		return noop, fmt.Errorf("%s: %w", op, err)
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// NewProvider собирает провайдер с ресурсом сервиса и сэмплером по доле запросов.
// Процессоры спанов (экспортёр, рекордер в тестах) передаются через opts.
func NewProvider(ctx context.Context, cfg config.TracingConfig, opts ...sdktrace.TracerProviderOption) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	base := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}

	return sdktrace.NewTracerProvider(append(base, opts...)...), nil
}
