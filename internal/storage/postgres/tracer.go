package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerID = "filmorate-storage-postgres"

// queryTracer открывает спан на каждый запрос и пакет pgx.
type queryTracer struct {
	tracer trace.Tracer
}

var (
	_ pgx.QueryTracer = (*queryTracer)(nil)
	_ pgx.BatchTracer = (*queryTracer)(nil)
)

func newQueryTracer(tp trace.TracerProvider) *queryTracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &queryTracer{tracer: tp.Tracer(tracerID)}
}

// spanName — первое слово SQL (SELECT, INSERT, ...), чтобы имя спана было коротким.
func spanName(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "postgres"
	}

	return "postgres " + strings.ToUpper(fields[0])
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx, _ = t.tracer.Start(ctx, spanName(data.SQL),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.statement", strings.Join(strings.Fields(data.SQL), " ")),
		),
	)

	return ctx
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if data.Err != nil {
		span.RecordError(data.Err)
		span.SetStatus(codes.Error, "query failed")
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()))
}

func (t *queryTracer) TraceBatchStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchStartData) context.Context {
	size := 0
	if data.Batch != nil {
		size = data.Batch.Len()
	}

	ctx, _ = t.tracer.Start(ctx, "postgres BATCH",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.Int("db.batch.size", size),
		),
	)

	return ctx
}

func (t *queryTracer) TraceBatchQuery(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchQueryData) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent("batch query", trace.WithAttributes(
		attribute.String("db.statement", strings.Join(strings.Fields(data.SQL), " ")),
	))

	if data.Err != nil {
		span.RecordError(data.Err)
	}
}

func (t *queryTracer) TraceBatchEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchEndData) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if data.Err != nil {
		span.RecordError(data.Err)
		span.SetStatus(codes.Error, "batch failed")
	}
}
