package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// InitTracerProvider installs the global tracer provider and W3C trace
// context propagator for the given service.
//
// No exporter is attached: spans carry real trace IDs for request
// correlation (X-Trace-Id header, structured logs) but are not shipped
// anywhere. The returned function shuts the provider down and flushes
// any pending state.
func InitTracerProvider(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create tracing resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	// Rebind the package tracer so spans come from the new provider.
	tracer = otel.Tracer("post-scheduler")

	return tp.Shutdown, nil
}
