package usecase

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource is the randomness the engine consumes. *rand.Rand satisfies it,
// which is what tests inject to make synthesis and ETA draws reproducible.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// lockedRand guards a rand.Rand so concurrent requests can share one source.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand returns a concurrency-safe RandSource. A zero seed falls back
// to the clock.
func NewLockedRand(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
