package controllers

import (
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	generator utils.GenerationClientInterface
	cache     mem.ItineraryCache
}

func NewHealthController(generator utils.GenerationClientInterface, cache mem.ItineraryCache) *HealthController {
	return &HealthController{generator: generator, cache: cache}
}

type HealthResponse struct {
	Status              string `json:"status"`
	GenerationProvider  string `json:"generationProvider"`
	GenerationAvailable bool   `json:"generationAvailable"`
	CachedItineraries   int    `json:"cachedItineraries"`
}

// GET /health. Always 200: a missing generation provider degrades the
// service to fallback itineraries, it does not make it unhealthy.
func (hc *HealthController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, HealthResponse{
		Status:              "ok",
		GenerationProvider:  hc.generator.Provider(),
		GenerationAvailable: hc.generator.Available(),
		CachedItineraries:   hc.cache.Len(),
	}, "")
}
