// Package tracing provides OpenTelemetry tracing utilities: the application
// tracer and HTTP server middleware. No exporter is configured here; the
// host process decides where spans go.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the tldr application.
var tracer = otel.Tracer("tldr")

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
