package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys set on operation spans.
const (
	AttrOperationName = "operation.name"
	AttrDurationMs    = "duration_ms"
	AttrStatus        = "status"
)

// Operation tracks one top-level unit of work, such as a CLI command.
type Operation struct {
	Name      string
	StartTime time.Time
	span      trace.Span
}

// StartOperation starts a root span for name.
func StartOperation(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *Operation) {
	ctx, span := StartSpan(ctx, name, trace.WithAttributes(
		append([]attribute.KeyValue{attribute.String(AttrOperationName, name)}, attrs...)...,
	))
	return ctx, &Operation{Name: name, StartTime: time.Now(), span: span}
}

// End records the outcome and ends the span.
func (o *Operation) End(err error) {
	status := "ok"
	if err != nil {
		status = "error"
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	}
	o.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, o.Duration().Milliseconds()),
	)
	o.span.End()
}

// Duration returns the elapsed time since the operation started.
func (o *Operation) Duration() time.Duration {
	return time.Since(o.StartTime)
}
