package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewEngineMetrics(reg)

	m.CalendarCacheHit("TJSP")
	m.CalendarCacheHit("TJSP")
	m.CalendarCacheMiss("TJSP")
	m.CalendarDegradedBuild("TRT2")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("TJSP")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheMisses.WithLabelValues("TJSP")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.degradedBuilds.WithLabelValues("TRT2")))
}

func TestEngineMetrics_HistogramsRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewEngineMetrics(reg)

	m.ObserveHolidayFetch("TJSP", 120*time.Millisecond)
	m.ObserveMatrixBuild(30 * time.Millisecond)
	m.ObserveChronologyBuild(10 * time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"prazo_calendar_holiday_fetch_seconds",
		"prazo_caseflow_matrix_build_seconds",
		"prazo_caseflow_chronology_build_seconds",
	} {
		assert.True(t, names[want], "missing metric %s", want)
	}
}

func TestEngineMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewEngineMetrics(reg)
	assert.Panics(t, func() { NewEngineMetrics(reg) })
}

//Personal.AI order the ending
