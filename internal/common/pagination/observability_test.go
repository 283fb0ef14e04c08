package pagination_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-pagination/internal/common/pagination"
)

func TestLogSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pagination.LogSummary(logger, newPaginator(95, 10, 5, 5).Summary())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Pagination computed", entry["msg"])
	assert.Equal(t, float64(5), entry["page"])
	assert.Equal(t, float64(10), entry["num_pages"])
	assert.Equal(t, float64(40), entry["offset"])
	assert.Equal(t, float64(3), entry["range_start"])
	assert.Equal(t, float64(7), entry["range_end"])
}

func TestLogConfigWarnings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	pagination.LogConfigWarnings(logger, []string{"first", "second"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"WARN"`)
	assert.Contains(t, lines[1], `"warning":"second"`)
}
