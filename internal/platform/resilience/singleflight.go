// Package resilience holds small concurrency guards shared by the services.
package resilience

import "sync"

type flightResult struct {
	value any
	err   error
}

type flight struct {
	done   chan struct{}
	result flightResult
}

// SingleFlight collapses concurrent calls for the same key into one
// execution. Followers block until the leader finishes and share its result.
type SingleFlight struct {
	mu      sync.Mutex
	flights map[string]*flight
}

// NewSingleFlight returns an empty group.
func NewSingleFlight() *SingleFlight {
	return &SingleFlight{flights: make(map[string]*flight)}
}

// Do runs fn for key unless a call for the same key is already in flight, in
// which case it waits for that call and returns its result. shared reports
// whether the result was produced by another caller.
func (s *SingleFlight) Do(key string, fn func() (any, error)) (value any, err error, shared bool) {
	s.mu.Lock()
	if f, ok := s.flights[key]; ok {
		s.mu.Unlock()
		<-f.done
		return f.result.value, f.result.err, true
	}

	f := &flight{done: make(chan struct{})}
	s.flights[key] = f
	s.mu.Unlock()

	f.result.value, f.result.err = fn()

	s.mu.Lock()
	delete(s.flights, key)
	s.mu.Unlock()
	close(f.done)

	return f.result.value, f.result.err, false
}
