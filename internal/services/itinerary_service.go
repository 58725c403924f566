package services

import (
	"context"
	"errors"
	"time"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	MessageServiceUnavailable = "AI service not available, showing sample itinerary"
	MessageGenerationFailed   = "AI service temporarily unavailable, showing sample itinerary"
)

type ItineraryServiceInterface interface {
	// PlanTrip returns an itinerary for req. The only errors are
	// utils.ErrMissingRequiredFields and utils.ErrInvalidTripRequest (a
	// duration below one day); every generation failure is absorbed into a
	// fallback itinerary.
	PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResult, error)
}

type ItineraryServiceOptions struct {
	// DedupeInFlight makes concurrent requests with the same fingerprint
	// share one generation call. Off by default: racing requests each call
	// the model and the last one to finish owns the cache entry.
	DedupeInFlight bool
}

type ItineraryService struct {
	cache     mem.ItineraryCache
	generator utils.GenerationClientInterface
	metrics   *metrics.Recorder
	logger    *zap.Logger
	opts      ItineraryServiceOptions
	inflight  singleflight.Group
}

func NewItineraryService(
	cache mem.ItineraryCache,
	generator utils.GenerationClientInterface,
	recorder *metrics.Recorder,
	logger *zap.Logger,
	opts ItineraryServiceOptions,
) *ItineraryService {
	if generator == nil {
		generator = utils.NewUnavailableGenerationClient("no generation client configured")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryService{
		cache:     cache,
		generator: generator,
		metrics:   recorder,
		logger:    logger,
		opts:      opts,
	}
}

// generationOutcome is what one generation attempt produced. A nil doc means
// the attempt failed and the caller must fall back.
type generationOutcome struct {
	doc     *response_models.ItineraryDocument
	message string
}

func (s *ItineraryService) PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResult, error) {
	normalized, adjustments, err := normalizeTripRequest(req)
	if err != nil {
		s.metrics.ObserveRequest(metrics.OutcomeInvalid)
		return nil, err
	}

	key := BuildFingerprint(normalized)
	log := s.logger.With(
		zap.String("fingerprint", key[:16]),
		zap.String("destination", normalized.Destination),
		zap.Int("days", normalized.Days()),
		zap.String("style", string(normalized.TravelStyle)),
	)
	if len(adjustments) > 0 {
		log.Debug("adjusted trip request", zap.Strings("adjustments", adjustments))
	}

	if entry, ok := s.cache.Get(key); ok {
		log.Info("returning cached itinerary", zap.Time("created_at", entry.CreatedAt))
		s.metrics.ObserveRequest(metrics.OutcomeCacheHit)
		return &response_models.PlanResult{Data: entry.Document, Cached: true}, nil
	}

	if !s.generator.Available() {
		log.Warn("generation client not available, using fallback itinerary")
		return s.fallback(normalized, MessageServiceUnavailable), nil
	}

	var outcome generationOutcome
	if s.opts.DedupeInFlight {
		// The shared call must outlive any single caller's request.
		shared := context.WithoutCancel(ctx)
		v, _, _ := s.inflight.Do(key, func() (interface{}, error) {
			return s.generate(shared, key, normalized, log), nil
		})
		outcome = v.(generationOutcome)
	} else {
		outcome = s.generate(ctx, key, normalized, log)
	}

	if outcome.doc == nil {
		return s.fallback(normalized, outcome.message), nil
	}

	s.metrics.ObserveRequest(metrics.OutcomeGenerated)
	return &response_models.PlanResult{Data: outcome.doc}, nil
}

// generate runs prompt → model → parse and caches a valid document.
func (s *ItineraryService) generate(ctx context.Context, key string, req request_models.TripRequest, log *zap.Logger) generationOutcome {
	prompt := BuildItineraryPrompt(req)
	provider := s.generator.Provider()

	log.Info("generating itinerary", zap.String("provider", provider))
	started := time.Now()
	raw, err := s.generator.Generate(ctx, prompt)
	elapsed := time.Since(started)

	if err != nil {
		status := "error"
		if errors.Is(err, utils.ErrEmptyResponse) {
			status = "empty"
		}
		s.metrics.ObserveGeneration(provider, status, elapsed)
		log.Error("generation failed, using fallback itinerary",
			zap.Duration("elapsed", elapsed), zap.Error(err))
		return generationOutcome{message: MessageGenerationFailed}
	}

	doc, notes, err := ParseItinerary(raw, req.Days())
	if err != nil {
		s.metrics.ObserveGeneration(provider, "malformed", elapsed)
		log.Error("discarding malformed model output, using fallback itinerary",
			zap.Duration("elapsed", elapsed), zap.Int("raw_chars", len(raw)), zap.Error(err))
		return generationOutcome{message: MessageGenerationFailed}
	}

	s.metrics.ObserveGeneration(provider, "ok", elapsed)
	if len(notes) > 0 {
		log.Debug("repaired model output", zap.Strings("notes", notes))
	}

	s.cache.Put(key, doc)
	log.Info("itinerary generated", zap.Duration("elapsed", elapsed))
	return generationOutcome{doc: doc}
}

// fallback builds the synthetic itinerary. It is never cached.
func (s *ItineraryService) fallback(req request_models.TripRequest, message string) *response_models.PlanResult {
	s.metrics.ObserveRequest(metrics.OutcomeFallback)
	return &response_models.PlanResult{
		Data:     BuildFallbackItinerary(req),
		Fallback: true,
		Message:  message,
	}
}
