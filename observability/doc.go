// Package observability wires OpenTelemetry trace and metric export for
// command-line tools built on httpclient.
//
// Setup installs global providers exporting over OTLP/HTTP; the executor's
// default tracer and instruments pick them up:
//
//	shutdown, err := observability.Setup(ctx, "restcall", "production", cfg.Telemetry)
//	defer shutdown(context.Background())
//
//	ctx, op := observability.StartOperation(ctx, "restcall.get")
//	defer op.End(err)
package observability
