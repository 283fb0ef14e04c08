package pagination

import (
	"log/slog"
)

// LogSummary logs a pagination summary with structured fields.
func LogSummary(logger *slog.Logger, m Metadata) {
	logger.Debug("Pagination computed",
		"page", m.CurrentPage,
		"limit", m.Limit,
		"item_count", m.ItemCount,
		"num_pages", m.NumPages,
		"offset", m.Offset,
		"range_start", first(m.Range),
		"range_end", last(m.Range))
}

// LogConfigWarnings logs one warning per configuration fallback.
func LogConfigWarnings(logger *slog.Logger, warnings []string) {
	for _, w := range warnings {
		logger.Warn("Pagination config fallback", "warning", w)
	}
}

func first(pages []int) int {
	if len(pages) == 0 {
		return 0
	}
	return pages[0]
}

func last(pages []int) int {
	if len(pages) == 0 {
		return 0
	}
	return pages[len(pages)-1]
}
