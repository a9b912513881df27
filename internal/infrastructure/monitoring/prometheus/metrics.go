// Package prometheus defines the detection engine's metrics surface.
// Metrics are registered on a caller-supplied Registerer so embedding
// applications keep control of their registry.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// namespace prefixes every metric exported by the engine.
const namespace = "senda"

// DetectionMetrics holds all metrics emitted by the detection core.
type DetectionMetrics struct {
	// Composite pipeline
	AnalysesTotal        *prometheus.CounterVec // label: intent
	AnalysisDuration     prometheus.Histogram
	DetectorMatchesTotal *prometheus.CounterVec // label: detector

	// Analysis cache
	CacheHitsTotal      prometheus.Counter
	CacheMissesTotal    prometheus.Counter
	CacheEvictionsTotal prometheus.Counter

	// Clinical scales
	ScaleSuggestionsTotal *prometheus.CounterVec // labels: scale, priority
	ScaleAutoScoresTotal  *prometheus.CounterVec // label: scale
}

// NewDetectionMetrics registers all engine metrics on reg and returns the
// populated struct.  Passing prometheus.DefaultRegisterer is the common case.
func NewDetectionMetrics(reg prometheus.Registerer) *DetectionMetrics {
	factory := promauto.With(reg)

	return &DetectionMetrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Composite analyses performed, by detected intent.",
		}, []string{"intent"}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of a full composite analysis.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		DetectorMatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detector_matches_total",
			Help:      "Signal detections that produced a non-empty result, by detector.",
		}, []string{"detector"}),

		CacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Analysis cache hits.",
		}),
		CacheMissesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Analysis cache misses, including expired entries.",
		}),
		CacheEvictionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Entries removed from the analysis cache by cleanup passes.",
		}),

		ScaleSuggestionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scale_suggestions_total",
			Help:      "Clinical scale administrations suggested, by scale and priority.",
		}, []string{"scale", "priority"}),
		ScaleAutoScoresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scale_auto_scores_total",
			Help:      "Clinical scales auto-scored from free text, by scale.",
		}, []string{"scale"}),
	}
}
