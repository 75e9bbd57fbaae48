// Package random provides the uniform integer source consumed by shuffling
// and by probabilistic structures elsewhere in the library.
package random

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Source produces uniformly distributed integers in a half-open range.
type Source interface {
	// IntInRange returns a uniform integer in [min, max).
	// The upper bound is exclusive.
	IntInRange(min, max int) int
}

// lockedSource wraps a rand.Rand so a single Source can be handed to
// multiple containers. rand.Rand itself is not safe for shared use.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a Source seeded with the given value. Two sources created
// with the same seed produce the same sequence.
func New(seed int64) Source {
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

// IntInRange returns a uniform integer in [min, max).
func (s *lockedSource) IntInRange(min, max int) int {
	if max <= min {
		panic(fmt.Sprintf("random: empty range [%d, %d)", min, max))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rnd.Intn(max-min)
}

var defaultSource = New(time.Now().UnixNano())

// Default returns the process-wide source, seeded once at startup.
func Default() Source {
	return defaultSource
}
