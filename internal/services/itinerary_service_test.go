package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

// fakeGenerator is a test double for utils.GenerationClientInterface.
type fakeGenerator struct {
	available bool
	raw       string
	err       error
	delay     time.Duration
	calls     atomic.Int32
	prompts   chan string
}

func (f *fakeGenerator) Provider() string { return "fake" }
func (f *fakeGenerator) Available() bool  { return f.available }
func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	if f.prompts != nil {
		f.prompts <- prompt
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.raw, f.err
}

var _ utils.GenerationClientInterface = (*fakeGenerator)(nil)

// spyCache records traffic while delegating to a real store.
type spyCache struct {
	*mem.ItineraryStore
	gets, puts atomic.Int32
}

func (s *spyCache) Get(key string) (mem.CacheEntry, bool) {
	s.gets.Add(1)
	return s.ItineraryStore.Get(key)
}

func (s *spyCache) Put(key string, doc *response_models.ItineraryDocument) {
	s.puts.Add(1)
	s.ItineraryStore.Put(key, doc)
}

func newService(t *testing.T, gen utils.GenerationClientInterface, opts services.ItineraryServiceOptions) (*services.ItineraryService, *spyCache) {
	t.Helper()
	cache := &spyCache{ItineraryStore: mem.NewItineraryStore(30 * time.Minute)}
	return services.NewItineraryService(cache, gen, nil, nil, opts), cache
}

func scenarioRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Destination:     "Goa",
		Duration:        3,
		TravelStyle:     "budget",
		GroupType:       "Couple",
		FoodPreference:  "Any",
		TravelInterests: []string{},
	}
}

func TestPlanTrip_unavailableClientFallsBack(t *testing.T) {
	gen := &fakeGenerator{available: false}
	svc, cache := newService(t, gen, services.ItineraryServiceOptions{})

	result, err := svc.PlanTrip(context.Background(), scenarioRequest())

	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.False(t, result.Cached)
	assert.Equal(t, services.MessageServiceUnavailable, result.Message)
	require.Len(t, result.Data.DailyItineraries, 3)
	assert.Equal(t, "₹18,000-36,000", result.Data.CostBreakdown.Total)
	assert.Zero(t, gen.calls.Load())
	assert.Zero(t, cache.puts.Load(), "fallback itineraries are never cached")
}

func TestPlanTrip_secondIdenticalRequestIsCached(t *testing.T) {
	gen := &fakeGenerator{available: true, raw: "```json\n" + validItineraryJSON + "\n```"}
	svc, _ := newService(t, gen, services.ItineraryServiceOptions{})

	req := scenarioRequest()
	req.Duration = 2

	first, err := svc.PlanTrip(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.False(t, first.Fallback)

	// Pickup location is not part of the fingerprint.
	again := req
	again.PickupLocation = "Mumbai"

	second, err := svc.PlanTrip(context.Background(), again)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.False(t, second.Fallback)
	assert.Equal(t, first.Data, second.Data)
	assert.EqualValues(t, 1, gen.calls.Load())
}

func TestPlanTrip_missingDestinationShortCircuits(t *testing.T) {
	gen := &fakeGenerator{available: true, raw: validItineraryJSON}
	svc, cache := newService(t, gen, services.ItineraryServiceOptions{})

	req := scenarioRequest()
	req.Destination = ""

	result, err := svc.PlanTrip(context.Background(), req)

	require.ErrorIs(t, err, utils.ErrMissingRequiredFields)
	assert.Nil(t, result)
	assert.Zero(t, cache.gets.Load())
	assert.Zero(t, cache.puts.Load())
	assert.Zero(t, gen.calls.Load())
}

func TestPlanTrip_generationFailuresFallBackWithoutCaching(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{name: "client error", gen: &fakeGenerator{available: true, err: utils.ErrClientUnavailable}},
		{name: "empty response", gen: &fakeGenerator{available: true, err: utils.ErrEmptyResponse}},
		{name: "no json", gen: &fakeGenerator{available: true, raw: "I'm sorry, I can't do that."}},
		{name: "missing summary", gen: &fakeGenerator{available: true, raw: `{"dailyItineraries": [{"day": 1}]}`}},
		{name: "empty plans", gen: &fakeGenerator{available: true, raw: `{"destinationSummary": "Goa", "dailyItineraries": []}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cache := newService(t, tt.gen, services.ItineraryServiceOptions{})

			result, err := svc.PlanTrip(context.Background(), scenarioRequest())

			require.NoError(t, err)
			assert.True(t, result.Fallback)
			assert.Equal(t, services.MessageGenerationFailed, result.Message)
			assert.Equal(t, services.BuildFallbackItinerary(scenarioRequest()), result.Data)
			assert.Zero(t, cache.puts.Load())

			// Nothing was cached, so the next call tries the model again.
			_, err = svc.PlanTrip(context.Background(), scenarioRequest())
			require.NoError(t, err)
			assert.EqualValues(t, 2, tt.gen.calls.Load())
		})
	}
}

func TestPlanTrip_promptCarriesRequest(t *testing.T) {
	gen := &fakeGenerator{available: true, raw: validItineraryJSON, prompts: make(chan string, 1)}
	svc, _ := newService(t, gen, services.ItineraryServiceOptions{})

	req := scenarioRequest()
	req.Destination = "Jaipur"
	_, err := svc.PlanTrip(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, <-gen.prompts, "- Destination: Jaipur")
}

func TestPlanTrip_concurrentRequestsWithoutDedupe(t *testing.T) {
	gen := &fakeGenerator{available: true, raw: validItineraryJSON, delay: 50 * time.Millisecond}
	svc, _ := newService(t, gen, services.ItineraryServiceOptions{})

	runConcurrently(t, svc, 4)

	// Each racing caller reaches the model; this is accepted behaviour.
	assert.EqualValues(t, 4, gen.calls.Load())
}

func TestPlanTrip_dedupeInFlightSharesGeneration(t *testing.T) {
	gen := &fakeGenerator{available: true, raw: validItineraryJSON, delay: 100 * time.Millisecond}
	svc, _ := newService(t, gen, services.ItineraryServiceOptions{DedupeInFlight: true})

	runConcurrently(t, svc, 4)

	assert.EqualValues(t, 1, gen.calls.Load())
}

func TestPlanTrip_dedupeSurvivesFirstCallerCancelling(t *testing.T) {
	gen := &fakeGenerator{available: true, raw: validItineraryJSON, delay: 200 * time.Millisecond}
	svc, _ := newService(t, gen, services.ItineraryServiceOptions{DedupeInFlight: true})

	firstCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.PlanTrip(firstCtx, scenarioRequest())
		assert.NoError(t, err)
	}()

	time.Sleep(20 * time.Millisecond)
	secondDone := make(chan *response_models.PlanResult, 1)
	go func() {
		result, err := svc.PlanTrip(context.Background(), scenarioRequest())
		assert.NoError(t, err)
		secondDone <- result
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	second := <-secondDone
	wg.Wait()
	require.NotNil(t, second)
	assert.False(t, second.Fallback)
	assert.EqualValues(t, 1, gen.calls.Load())
}

func TestPlanTrip_acceptsUnrecognizedRequestValues(t *testing.T) {
	tests := map[string]func(r *request_models.TripRequest){
		"long trip":      func(r *request_models.TripRequest) { r.Duration = 45 },
		"unknown style":  func(r *request_models.TripRequest) { r.TravelStyle = "moderate" },
		"unknown group":  func(r *request_models.TripRequest) { r.GroupType = "Team" },
		"unknown food":   func(r *request_models.TripRequest) { r.FoodPreference = "Keto" },
		"free-form date": func(r *request_models.TripRequest) { r.Date = "Dec 20" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t, &fakeGenerator{}, services.ItineraryServiceOptions{})
			req := scenarioRequest()
			mutate(&req)

			result, err := svc.PlanTrip(context.Background(), req)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.Fallback)
			assert.NotEmpty(t, result.Data.DailyItineraries)
		})
	}
}

func runConcurrently(t *testing.T, svc *services.ItineraryService, n int) {
	t.Helper()
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			result, err := svc.PlanTrip(context.Background(), scenarioRequest())
			assert.NoError(t, err)
			assert.False(t, result.Fallback)
		}()
	}
	close(start)
	wg.Wait()
}

func TestPlanTrip_recordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := mem.NewItineraryStore(time.Minute)
	rec, err := metrics.NewRecorder(reg, store.Len)
	require.NoError(t, err)

	gen := &fakeGenerator{available: true, raw: validItineraryJSON}
	svc := services.NewItineraryService(store, gen, rec, nil, services.ItineraryServiceOptions{})

	_, err = svc.PlanTrip(context.Background(), scenarioRequest())
	require.NoError(t, err)
	_, err = svc.PlanTrip(context.Background(), scenarioRequest())
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "tripplanner_itinerary_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "generated and cache_hit series")

	count, err = testutil.GatherAndCount(reg, "tripplanner_generation_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
