// Package prometheus exposes the engine's operational metrics.  It implements
// the metrics ports declared by the calendar store and the caseflow service;
// the surrounding SaaS shell mounts the registry on its own metrics endpoint,
// the engine has no network surface.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "prazo"

// EngineMetrics bundles every collector the engine emits.
type EngineMetrics struct {
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	degradedBuilds *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec

	matrixDuration     prometheus.Histogram
	chronologyDuration prometheus.Histogram
}

// NewEngineMetrics registers all collectors on reg and returns the bundle.
// Pass prometheus.DefaultRegisterer for the process-global registry.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	factory := promauto.With(reg)
	return &EngineMetrics{
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calendar",
			Name:      "cache_hits_total",
			Help:      "Calendar cache hits by tribunal.",
		}, []string{"tribunal"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calendar",
			Name:      "cache_misses_total",
			Help:      "Calendar cache misses by tribunal.",
		}, []string{"tribunal"}),
		degradedBuilds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calendar",
			Name:      "degraded_builds_total",
			Help:      "Calendar builds that fell back to national+movable holidays.",
		}, []string{"tribunal"}),
		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "calendar",
			Name:      "holiday_fetch_seconds",
			Help:      "Tribunal holiday registry fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tribunal"}),
		matrixDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "caseflow",
			Name:      "matrix_build_seconds",
			Help:      "Deadline matrix build latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		chronologyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "caseflow",
			Name:      "chronology_build_seconds",
			Help:      "Chronology build latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// calendar.Metrics implementation.

func (m *EngineMetrics) CalendarCacheHit(tribunalID string) {
	m.cacheHits.WithLabelValues(tribunalID).Inc()
}

func (m *EngineMetrics) CalendarCacheMiss(tribunalID string) {
	m.cacheMisses.WithLabelValues(tribunalID).Inc()
}

func (m *EngineMetrics) CalendarDegradedBuild(tribunalID string) {
	m.degradedBuilds.WithLabelValues(tribunalID).Inc()
}

func (m *EngineMetrics) ObserveHolidayFetch(tribunalID string, d time.Duration) {
	m.fetchDuration.WithLabelValues(tribunalID).Observe(d.Seconds())
}

// caseflow.Metrics implementation.

func (m *EngineMetrics) ObserveMatrixBuild(d time.Duration) {
	m.matrixDuration.Observe(d.Seconds())
}

func (m *EngineMetrics) ObserveChronologyBuild(d time.Duration) {
	m.chronologyDuration.Observe(d.Seconds())
}

//Personal.AI order the ending
