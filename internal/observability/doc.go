// Package observability provides logging and tracing infrastructure
// for the post-scheduler application.
//
// Subpackages:
//   - logging: structured JSON logging built on log/slog
//   - tracing: OpenTelemetry trace propagation and HTTP middleware
//
// Example:
//
//	import "post-scheduler/internal/observability/logging"
//
//	logger := logging.NewLogger()
//	logger.Info("dispatch cycle finished", "published", 3)
package observability
