// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Context-aware logging
//   - Configurable log levels via LOG_LEVEL
//
// Example usage:
//
//	import "simple-pagination/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stderr, "text")
//	    ctx := logging.WithLogger(context.Background(), logger)
//	    logging.FromContext(ctx).Info("paginator ready", slog.Int("limit", 25))
//	}
package logging
