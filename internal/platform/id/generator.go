// Package id produces short unique identifiers for records created at
// runtime.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
)

// Generator hands out identifiers. Implementations must be safe for
// concurrent use.
type Generator interface {
	NewID(prefix string) string
}

// Random generates identifiers of the form "<prefix>-<12 hex chars>".
type Random struct{}

func (Random) NewID(prefix string) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// nothing sensible to do but panic.
		panic(fmt.Sprintf("id: read random bytes: %v", err))
	}
	return prefix + "-" + hex.EncodeToString(buf)
}

// Sequential generates "<prefix>-1", "<prefix>-2", ... for deterministic
// tests.
type Sequential struct {
	counter atomic.Int64
}

func (s *Sequential) NewID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, s.counter.Add(1))
}
