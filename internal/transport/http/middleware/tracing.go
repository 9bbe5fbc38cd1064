package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/pribylovaa/go-filmorate/pkg/log"
)

const tracerID = "filmorate-http"

// Tracing открывает серверный спан на запрос и продолжает входящий trace
// из заголовков (traceparent). Имя спана — метод и шаблон маршрута chi.
// В логгер запроса добавляется trace_id. tp == nil — глобальный провайдер otel.
func Tracing(tp trace.TracerProvider) Middleware {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(tracerID)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			if rid := RequestIDFrom(ctx); rid != "" {
				span.SetAttributes(attribute.String("request_id", rid))
			}

			if sc := span.SpanContext(); sc.IsValid() {
				ctx = log.With(ctx, "trace_id", sc.TraceID().String())
			}

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					span.SetName(r.Method + " " + p)
					span.SetAttributes(attribute.String("http.route", p))
				}
			}

			status := sw.Status()
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
			}
		})
	}
}
