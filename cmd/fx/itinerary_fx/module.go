package itinerary_fx

import (
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(ProvideItineraryService)

// ProvideItineraryService creates the itinerary service with all dependencies
func ProvideItineraryService(
	cache mem.ItineraryCache,
	generator utils.GenerationClientInterface,
	recorder *metrics.Recorder,
	logger *zap.Logger,
	cfg config.Config,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(
		cache,
		generator,
		recorder,
		logger.Named("itinerary"),
		services.ItineraryServiceOptions{DedupeInFlight: cfg.DedupeInFlight},
	)
}
