// Package tracing provides OpenTelemetry tracing for HTTP requests.
//
// InitTracerProvider installs a global tracer provider. With no OTLP
// endpoint configured it installs a no-op provider that still generates
// trace IDs, so log correlation via X-Trace-Id works without an exporter.
//
// Middleware extracts W3C Trace Context headers from incoming requests,
// starts a server span, and echoes the trace ID in the X-Trace-Id
// response header.
//
// Example:
//
//	shutdown, err := tracing.InitTracerProvider(ctx, "post-scheduler-api")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer shutdown(ctx)
//
//	handler := tracing.Middleware(mux)
package tracing
