// Package cache provides an in-process TTL cache for derived read models.
package cache

import (
	"sync"
	"time"

	"github.com/clonkbot/cricket-auction-hub/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a TTL keyed cache. A zero TTL disables expiry. Loads for the same
// key are collapsed through a single-flight group so a burst of misses runs
// the loader once.
type Store struct {
	ttl     time.Duration
	now     func() time.Time
	flights *resilience.SingleFlight

	mu      sync.RWMutex
	entries map[string]entry
}

// NewStore returns an empty store with the given TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		flights: resilience.NewSingleFlight(),
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key if present and unexpired.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.Delete(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the store's TTL.
func (s *Store) Set(key string, value any) {
	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

// Delete removes key from the store.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key, or runs load once across
// concurrent callers and caches its result. Loader errors are returned and
// never cached.
func (s *Store) GetOrLoad(key string, load func() (any, error)) (any, error) {
	if value, ok := s.Get(key); ok {
		return value, nil
	}

	value, err, _ := s.flights.Do(key, func() (any, error) {
		if value, ok := s.Get(key); ok {
			return value, nil
		}
		value, err := load()
		if err != nil {
			return nil, err
		}
		s.Set(key, value)
		return value, nil
	})
	return value, err
}
