package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/pribylovaa/go-filmorate/pkg/log"
)

func newSpanRecorder(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp, rec
}

// Имя спана — метод и шаблон маршрута; 5xx помечается ошибкой.
func TestTracing_SpanPerRequest(t *testing.T) {
	tp, rec := newSpanRecorder(t)

	r := chi.NewRouter()
	r.Use(Tracing(tp))
	r.Get("/films/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.True(t, trace.SpanFromContext(r.Context()).SpanContext().IsValid())
		w.WriteHeader(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), makeReq("/films/7"))

	ended := rec.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "GET /films/{id}", ended[0].Name())
	require.Equal(t, trace.SpanKindServer, ended[0].SpanKind())
	require.Equal(t, codes.Error, ended[0].Status().Code)
}

// Входящий traceparent продолжает существующий trace.
func TestTracing_ContinuesIncomingTrace(t *testing.T) {
	tp, rec := newSpanRecorder(t)

	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator()) })

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := makeReq("/mpa")
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	ch := &capHandler{}
	var spanTrace string
	var loggedTrace any
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanTrace = trace.SpanFromContext(r.Context()).SpanContext().TraceID().String()
		log.From(r.Context()).Info("inside")
		loggedTrace = ch.attrs["trace_id"]
	})

	Chain(h, Logging(slog.New(ch)), Tracing(tp)).ServeHTTP(httptest.NewRecorder(), req)

	ended := rec.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, traceID, ended[0].SpanContext().TraceID().String())
	require.Equal(t, traceID, spanTrace)
	require.Equal(t, traceID, loggedTrace)
	require.Equal(t, "GET", ended[0].Name())
}
