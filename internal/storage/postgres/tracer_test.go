package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracer(t *testing.T) (*queryTracer, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return newQueryTracer(tp), rec
}

// Запрос становится спаном с коротким именем и текстом SQL.
func TestQueryTracer_Query(t *testing.T) {
	qt, rec := newRecordingTracer(t)

	ctx := qt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{
		SQL: "\n\t\tUPDATE films\n\t\tSET name = $2\n\t\tWHERE id = $1",
	})
	qt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("UPDATE 1")})

	ended := rec.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "postgres UPDATE", ended[0].Name())
	require.Equal(t, codes.Unset, ended[0].Status().Code)

	attrs := map[string]any{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	require.Equal(t, "UPDATE films SET name = $2 WHERE id = $1", attrs["db.statement"])
	require.Equal(t, int64(1), attrs["db.rows_affected"])
}

// Ошибка запроса помечает спан статусом Error.
func TestQueryTracer_QueryError(t *testing.T) {
	qt, rec := newRecordingTracer(t)

	ctx := qt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	qt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("conn reset")})

	ended := rec.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.NotEmpty(t, ended[0].Events())
}

// Пакет — один спан с событием на каждый запрос.
func TestQueryTracer_Batch(t *testing.T) {
	qt, rec := newRecordingTracer(t)

	b := &pgx.Batch{}
	b.Queue("INSERT INTO likes (film_id, person_id) VALUES ($1, $2)", 1, 2)
	b.Queue("INSERT INTO likes (film_id, person_id) VALUES ($1, $2)", 1, 3)

	ctx := qt.TraceBatchStart(context.Background(), nil, pgx.TraceBatchStartData{Batch: b})
	for range b.Len() {
		qt.TraceBatchQuery(ctx, nil, pgx.TraceBatchQueryData{SQL: "INSERT INTO likes (film_id, person_id) VALUES ($1, $2)"})
	}
	qt.TraceBatchEnd(ctx, nil, pgx.TraceBatchEndData{})

	ended := rec.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "postgres BATCH", ended[0].Name())
	require.Len(t, ended[0].Events(), 2)
}

func TestSpanName(t *testing.T) {
	require.Equal(t, "postgres SELECT", spanName("  select id FROM films"))
	require.Equal(t, "postgres", spanName("   "))
}
