package mem_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/response_models"
	mem "tripplanner/pkg/memcache"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newStore(t *testing.T) (*mem.ItineraryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	return mem.NewItineraryStore(30*time.Minute, mem.WithClock(clock.Now)), clock
}

func doc(summary string) *response_models.ItineraryDocument {
	return &response_models.ItineraryDocument{DestinationSummary: summary}
}

func TestItineraryStore_getWithinTTL(t *testing.T) {
	store, clock := newStore(t)
	store.Put("k", doc("Goa"))

	clock.Advance(30*time.Minute - time.Nanosecond)

	entry, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "Goa", entry.Document.DestinationSummary)
}

func TestItineraryStore_expiresAtTTL(t *testing.T) {
	store, clock := newStore(t)
	store.Put("k", doc("Goa"))

	clock.Advance(30 * time.Minute)

	_, ok := store.Get("k")
	assert.False(t, ok)
	// Lazy expiry: the entry is still physically present until a sweep.
	assert.Equal(t, 1, store.Len())
}

func TestItineraryStore_putSweepsExpiredEntries(t *testing.T) {
	store, clock := newStore(t)
	store.Put("old-1", doc("a"))
	store.Put("old-2", doc("b"))

	clock.Advance(31 * time.Minute)
	store.Put("fresh", doc("c"))

	assert.Equal(t, 1, store.Len())
	_, ok := store.Get("fresh")
	assert.True(t, ok)
}

func TestItineraryStore_lastWriteWins(t *testing.T) {
	store, clock := newStore(t)
	store.Put("k", doc("first"))
	clock.Advance(10 * time.Minute)
	store.Put("k", doc("second"))

	// The overwrite resets the age, so the entry outlives the first write's TTL.
	clock.Advance(25 * time.Minute)

	entry, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", entry.Document.DestinationSummary)
}

func TestItineraryStore_evictExpired(t *testing.T) {
	store, clock := newStore(t)
	store.Put("a", doc("a"))
	clock.Advance(20 * time.Minute)
	store.Put("b", doc("b"))
	clock.Advance(15 * time.Minute)

	assert.Equal(t, 1, store.EvictExpired())
	assert.Equal(t, 1, store.Len())
}

func TestNewItineraryStore_defaultsTTL(t *testing.T) {
	store := mem.NewItineraryStore(0)
	assert.Equal(t, mem.DefaultItineraryTTL, store.TTL())
}

func TestItineraryStore_concurrentAccess(t *testing.T) {
	store := mem.NewItineraryStore(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := []string{"a", "b", "c"}[i%3]
			store.Put(key, doc(key))
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, store.Len())
}
