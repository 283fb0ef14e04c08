package pagination_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"simple-pagination/internal/common/pagination"
)

func TestMetrics_OneComputationPerChange(t *testing.T) {
	before := testutil.ToFloat64(pagination.ComputationsTotal)

	p := newPaginator(100, 25, 2, 5)
	p.NumPages()
	p.Range()
	p.Offset()
	assert.Equal(t, before+1, testutil.ToFloat64(pagination.ComputationsTotal))

	p.SetLimit(10)
	p.Offset()
	p.CountEnd()
	assert.Equal(t, before+2, testutil.ToFloat64(pagination.ComputationsTotal))
}

func TestMetrics_WindowClamps(t *testing.T) {
	startBefore := testutil.ToFloat64(pagination.WindowClampsTotal.WithLabelValues("start"))
	endBefore := testutil.ToFloat64(pagination.WindowClampsTotal.WithLabelValues("end"))

	// 4 pages with a window of 5 on page 1 shifts both ways.
	newPaginator(100, 25, 1, 5).Range()

	assert.Equal(t, startBefore+1, testutil.ToFloat64(pagination.WindowClampsTotal.WithLabelValues("start")))
	assert.Equal(t, endBefore+1, testutil.ToFloat64(pagination.WindowClampsTotal.WithLabelValues("end")))
}

func TestRecordSummary(t *testing.T) {
	tests := []struct {
		page   int
		bucket string
	}{
		{page: 1, bucket: "1-10"},
		{page: 11, bucket: "11-50"},
		{page: 51, bucket: "51-100"},
		{page: 101, bucket: "100+"},
	}

	for _, tt := range tests {
		before := testutil.ToFloat64(pagination.SummariesTotal.WithLabelValues(tt.bucket))

		pagination.RecordSummary(pagination.Metadata{CurrentPage: tt.page, NumPages: 200})

		assert.Equal(t, before+1, testutil.ToFloat64(pagination.SummariesTotal.WithLabelValues(tt.bucket)),
			"bucket %s", tt.bucket)
	}
}
