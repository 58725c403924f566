package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/generation_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/logger_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/metrics_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/config"
	"tripplanner/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		appOptions(),
	).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		memcache_fx.Module,
		metrics_fx.Module,
		generation_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, registry, itineraryController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	registry *prometheus.Registry,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) {

	api := r.Group("/api")
	api.POST("/itinerary", itineraryController.GenerateItineraryHandler)
	api.POST("/generate-itinerary", itineraryController.GenerateItineraryHandler)

	r.GET("/health", healthController.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
