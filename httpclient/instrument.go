package httpclient

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/kbukum/resttools/httpclient"

// Span attribute keys.
const (
	AttrRequestMethod = "http.request.method"
	AttrURLFull       = "url.full"
	AttrStatusCode    = "http.response.status_code"
	AttrErrorCode     = "resttools.error.code"
	AttrOutcome       = "outcome"
)

const outcomeSuccess = "success"

// Metrics records request counts and latencies.
type Metrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics creates request instruments on the given meter provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentationName)

	requests, err := meter.Int64Counter("resttools.requests",
		metric.WithDescription("Requests issued, by method and outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("resttools.request.duration",
		metric.WithDescription("Request latency, by method and outcome"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{requests: requests, duration: duration}, nil
}

func (m *Metrics) record(ctx context.Context, method string, err error, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String(AttrOutcome, outcomeOf(err)),
	)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(d.Microseconds())/1000, attrs)
}

var (
	globalMetricsOnce sync.Once
	globalMetrics     *Metrics
)

// defaultMetrics binds to the global meter provider, which forwards to
// whatever provider the application installs later.
func defaultMetrics() *Metrics {
	globalMetricsOnce.Do(func() {
		m, err := NewMetrics(otel.GetMeterProvider())
		if err == nil {
			globalMetrics = m
		}
	})
	return globalMetrics
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if code, ok := CodeOf(err); ok {
		return code.String()
	}
	return "unknown"
}

// endSpan annotates span with the request outcome.
func endSpan(span trace.Span, statusCode int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int(AttrStatusCode, statusCode))
	}
	if err != nil {
		span.SetAttributes(attribute.String(AttrErrorCode, outcomeOf(err)))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcomeOf(err))
	}
	span.End()
}
