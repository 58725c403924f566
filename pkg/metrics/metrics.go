// Package metrics exposes Prometheus instrumentation for itinerary planning.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for itinerary requests.
const (
	OutcomeCacheHit  = "cache_hit"
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
	OutcomeInvalid   = "invalid"
)

// Recorder wraps the collectors the itinerary service reports to. A nil
// *Recorder is valid and records nothing.
type Recorder struct {
	requests           *prometheus.CounterVec
	generationCalls    *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
}

// NewRecorder registers the itinerary collectors with reg. cachedEntries,
// when non-nil, backs a gauge of the current cache size.
func NewRecorder(reg prometheus.Registerer, cachedEntries func() int) (*Recorder, error) {
	r := &Recorder{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripplanner_itinerary_requests_total",
				Help: "Itinerary requests by outcome",
			},
			[]string{"outcome"},
		),
		generationCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripplanner_generation_calls_total",
				Help: "Calls to the generation service by provider and status",
			},
			[]string{"provider", "status"},
		),
		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tripplanner_generation_duration_seconds",
				Help:    "Latency of generation calls",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
			},
			[]string{"provider"},
		),
	}

	collectors := []prometheus.Collector{r.requests, r.generationCalls, r.generationDuration}
	if cachedEntries != nil {
		collectors = append(collectors, prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "tripplanner_cached_itineraries",
				Help: "Itineraries currently held in the result cache, including expired entries not yet swept",
			},
			func() float64 { return float64(cachedEntries()) },
		))
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveRequest(outcome string) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveGeneration(provider, status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.generationCalls.WithLabelValues(provider, status).Inc()
	r.generationDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}
