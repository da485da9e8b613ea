package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the ETL run.
type Metrics struct {
	CandidatesLoaded *prometheus.CounterVec // labels: source
	RecordsDropped   *prometheus.CounterVec // labels: reason={type,area,location}
	DuplicatesMerged prometheus.Counter
	TourMatched      prometheus.Counter

	// Enrichment metrics.
	EcoMapped prometheus.Counter
	EcoMisses prometheus.Counter

	SpotsCanonical prometheus.Gauge
	RunDuration    prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CandidatesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spot_etl",
			Name:      "candidates_loaded_total",
			Help:      "Normalized candidates produced per source.",
		}, []string{"source"}),
		RecordsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spot_etl",
			Name:      "records_dropped_total",
			Help:      "Raw records dropped during normalization by reason.",
		}, []string{"reason"}),
		DuplicatesMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spot_etl",
			Name:      "duplicates_merged_total",
			Help:      "Candidates collapsed into an existing spot.",
		}),
		TourMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spot_etl",
			Name:      "tour_matched_total",
			Help:      "Spots enriched from an overlapping tour-API record.",
		}),
		EcoMapped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spot_etl",
			Name:      "eco_mapped_total",
			Help:      "Spots joined to an ecosystem-service district score.",
		}),
		EcoMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spot_etl",
			Name:      "eco_misses_total",
			Help:      "Spots with no resolvable ecosystem-service district.",
		}),
		SpotsCanonical: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "spot_etl",
			Name:      "spots_canonical",
			Help:      "Canonical spot count after the latest run.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "spot_etl",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete aggregation run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}

	prometheus.MustRegister(
		m.CandidatesLoaded,
		m.RecordsDropped,
		m.DuplicatesMerged,
		m.TourMatched,
		m.EcoMapped,
		m.EcoMisses,
		m.SpotsCanonical,
		m.RunDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CandidatesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "spot_etl", Name: "candidates_loaded_total"}, []string{"source"}),
		RecordsDropped:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "spot_etl", Name: "records_dropped_total"}, []string{"reason"}),
		DuplicatesMerged: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spot_etl", Name: "duplicates_merged_total"}),
		TourMatched:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spot_etl", Name: "tour_matched_total"}),
		EcoMapped:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spot_etl", Name: "eco_mapped_total"}),
		EcoMisses:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spot_etl", Name: "eco_misses_total"}),
		SpotsCanonical:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "spot_etl", Name: "spots_canonical"}),
		RunDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "spot_etl", Name: "run_duration_seconds"}),
	}
}
