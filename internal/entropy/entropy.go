// Package entropy provides the random sources fed into the geography model.
// Production uses crypto/rand; tooling and tests use seeded or fixed
// sources for reproducible surveys.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"sync"
)

// Crypto draws from crypto/rand. Safe for concurrent use.
type Crypto struct{}

// NewCrypto returns a crypto/rand-backed source.
func NewCrypto() *Crypto { return &Crypto{} }

// Float64 returns a uniform value in [0, 1).
func (*Crypto) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; 0.5 is the
		// model's zero-jitter midpoint if it somehow does.
		return 0.5
	}
	// Use 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Seeded is a deterministic source for reproducible derivations, e.g. the
// survey CLI's --seed flag. Safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeeded returns a source replaying the PRNG stream for the given seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mathrand.New(mathrand.NewSource(seed))} //nolint:gosec // reproducibility, not security
}

// Float64 returns the next value in the seeded stream.
func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Fixed always returns the same draw. Fixed(0.5) is the model's zero-jitter
// midpoint used by tests and the CLI's --no-jitter mode.
type Fixed float64

// Float64 returns the pinned draw.
func (f Fixed) Float64() float64 { return float64(f) }
