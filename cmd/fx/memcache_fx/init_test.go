package memcache_fx

import (
	"testing"
	"tripplanner/internal/config"
	mem "tripplanner/pkg/memcache"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func TestModule_sharesOneStoreAndFallsBackToDefaultTTL(t *testing.T) {
	var (
		store *mem.ItineraryStore
		cache mem.ItineraryCache
	)

	app := fxtest.New(t,
		fx.Supply(config.Config{}, zap.NewNop()),
		Module,
		fx.Populate(&store, &cache),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Same(t, store, cache)
	assert.Equal(t, mem.DefaultItineraryTTL, store.TTL())
}
