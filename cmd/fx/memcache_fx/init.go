package memcache_fx

import (
	"context"
	"time"
	"tripplanner/internal/config"
	mem "tripplanner/pkg/memcache"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(
		provideItineraryStore,
		func(store *mem.ItineraryStore) mem.ItineraryCache { return store },
	),
	fx.Invoke(startJanitor),
)

func provideItineraryStore(cfg config.Config, logger *zap.Logger) *mem.ItineraryStore {
	store := mem.NewItineraryStore(cfg.CacheTTL)
	logger.Info("itinerary cache ready", zap.Duration("ttl", store.TTL()))
	return store
}

// startJanitor evicts expired itineraries once per TTL so memory is released
// even when no new itineraries are written.
func startJanitor(lc fx.Lifecycle, store *mem.ItineraryStore, logger *zap.Logger) {
	done := make(chan struct{})
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(stopped)
				ticker := time.NewTicker(store.TTL())
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.EvictExpired(); n > 0 {
							logger.Debug("evicted expired itineraries", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			select {
			case <-stopped:
			case <-ctx.Done():
			}
			return nil
		},
	})
}
