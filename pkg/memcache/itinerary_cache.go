// pkg/memcache/itinerary_cache.go
package mem

import (
	"sync"
	"time"
	"tripplanner/internal/models/response_models"
)

const DefaultItineraryTTL = 30 * time.Minute

type ItineraryCache interface {
	// Get returns the entry for key if it is younger than the TTL.
	// Expired entries are reported absent even before they are swept.
	Get(key string) (CacheEntry, bool)

	// Put stores doc under key, replacing any previous entry (last write
	// wins), then sweeps expired entries.
	Put(key string, doc *response_models.ItineraryDocument)

	EvictExpired() int
	Len() int
}

type CacheEntry struct {
	Document  *response_models.ItineraryDocument
	CreatedAt time.Time
}

type ItineraryStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]CacheEntry
}

type Option func(*ItineraryStore)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *ItineraryStore) { s.now = now }
}

func NewItineraryStore(ttl time.Duration, opts ...Option) *ItineraryStore {
	if ttl <= 0 {
		ttl = DefaultItineraryTTL
	}
	s := &ItineraryStore{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]CacheEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ItineraryStore) TTL() time.Duration { return s.ttl }

func (s *ItineraryStore) Get(key string) (CacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.expired(e, s.now()) {
		return CacheEntry{}, false
	}
	return e, true
}

func (s *ItineraryStore) Put(key string, doc *response_models.ItineraryDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.data[key] = CacheEntry{
		Document:  doc,
		CreatedAt: now,
	}
	s.sweepLocked(now)
}

func (s *ItineraryStore) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

// Len counts stored entries, including expired ones not yet swept.
func (s *ItineraryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *ItineraryStore) sweepLocked(now time.Time) int {
	removed := 0
	for key, e := range s.data {
		if s.expired(e, now) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

func (s *ItineraryStore) expired(e CacheEntry, now time.Time) bool {
	return now.Sub(e.CreatedAt) >= s.ttl
}
