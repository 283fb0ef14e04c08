// Package observability groups the structured logging and Prometheus
// metrics helpers used by the paginate command and the pagination package.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Text exposition of registered Prometheus metrics
package observability
