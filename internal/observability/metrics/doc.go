// Package metrics exposes registered Prometheus metrics outside of an HTTP
// scrape, for command-line tools that exit before anything could scrape them.
//
// Example usage:
//
//	if err := metrics.WriteText(os.Stderr, prometheus.DefaultGatherer, "pagination_"); err != nil {
//	    logger.Error("failed to write metrics", slog.Any("error", err))
//	}
package metrics
