package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAreIndependentPerInstance(t *testing.T) {
	a := New("seeder")
	b := New("seeder")

	a.StatementsGenerated.WithLabelValues("csv", "warning").Add(3)

	assert.Equal(t, float64(3), testutil.ToFloat64(a.StatementsGenerated.WithLabelValues("csv", "warning")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.StatementsGenerated.WithLabelValues("csv", "warning")))
}

func TestRegistryGathersSeries(t *testing.T) {
	m := New("seeder")
	m.IngestRows.WithLabelValues("used").Add(2)
	m.IngestRows.WithLabelValues("skipped").Inc()

	count, err := testutil.GatherAndCount(m.Registry(), "seeder_ingest_rows_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWriteToFile(t *testing.T) {
	m := New("seeder")
	m.StatementsByIndicator.WithLabelValues("Dengue").Inc()

	path := filepath.Join(t.TempDir(), "seeder.prom")
	require.NoError(t, m.WriteToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `seeder_statements_by_indicator_total{indicator_type="Dengue"} 1`)
}
