package metrics_fx

import (
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideRegistry,
	ProvideRecorder,
)

// ProvideRegistry returns a private registry carrying the Go runtime and
// process collectors. It is served on /metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func ProvideRecorder(reg *prometheus.Registry, cache mem.ItineraryCache) (*metrics.Recorder, error) {
	return metrics.NewRecorder(reg, cache.Len)
}
