package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bacon/metrics"
)

func TestRecorder_ObserveBuild(t *testing.T) {
	r := metrics.New()
	r.ObserveBuild(4, 3, 4, 10*time.Millisecond)

	assert.Equal(t, 4.0, testutil.ToFloat64(r.RecordsLoaded))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.GraphVertices))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.EdgeInsertions))
	assert.Equal(t, 1, testutil.CollectAndCount(r.BuildDuration))
}

func TestRecorder_ObserveSearch(t *testing.T) {
	r := metrics.New()
	r.ObserveSearch(metrics.OutcomeFound, 2, time.Millisecond)
	r.ObserveSearch(metrics.OutcomeUnreachable, 0, time.Millisecond)
	r.ObserveSearch(metrics.OutcomeUnreachable, 0, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.Searches.WithLabelValues(metrics.OutcomeFound)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Searches.WithLabelValues(metrics.OutcomeUnreachable)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.Searches.WithLabelValues(metrics.OutcomeError)))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.New()
	r.ObserveBuild(2, 2, 2, time.Millisecond)

	path := filepath.Join(t.TempDir(), "bacon.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bacon_graph_vertices 2")
	assert.Contains(t, string(data), "bacon_records_loaded_total 2")
}
