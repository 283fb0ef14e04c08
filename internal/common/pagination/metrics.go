package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"simple-pagination/internal/pkg/config"
)

var configMetrics = config.NewConfigMetrics("pagination")

var (
	// ComputationsTotal counts derivations of a paginator's values.
	// A derivation happens on the first read after any input changes.
	ComputationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_computations_total",
			Help: "Total number of pagination derivations",
		},
	)

	// WindowClampsTotal counts page windows shifted at an edge.
	// Labels: edge (start, end)
	WindowClampsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_window_clamps_total",
			Help: "Total number of page windows shifted to fit the page list",
		},
		[]string{"edge"},
	)

	// SummariesTotal counts rendered summaries by current page bucket.
	// Labels: page_range (1-10, 11-50, 51-100, 100+)
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_summaries_total",
			Help: "Total number of pagination summaries produced",
		},
		[]string{"page_range"},
	)

	// NumPages tracks the distribution of page counts.
	NumPages = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagination_num_pages",
			Help:    "Distribution of computed page counts",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 500, 1000},
		},
	)
)

// RecordSummary records metrics for a produced summary.
func RecordSummary(m Metadata) {
	SummariesTotal.WithLabelValues(getPageRangeBucket(m.CurrentPage)).Inc()
	NumPages.Observe(float64(m.NumPages))
}

func recordWindow(w Window) {
	ComputationsTotal.Inc()
	if w.ShiftedRight {
		WindowClampsTotal.WithLabelValues("start").Inc()
	}
	if w.ShiftedLeft {
		WindowClampsTotal.WithLabelValues("end").Inc()
	}
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
