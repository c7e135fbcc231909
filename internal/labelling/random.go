package labelling

import (
	"math/rand"
	"sync"
)

// RandomSource draws uniformly distributed bytes from an inclusive range.
type RandomSource interface {
	ByteInRange(min, max uint8) uint8
}

// randSource adapts math/rand to RandomSource.
type randSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandSource returns a RandomSource backed by math/rand with the given
// seed. Equal seeds produce equal color tables.
func NewRandSource(seed int64) RandomSource {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) ByteInRange(min, max uint8) uint8 {
	if max <= min {
		return min
	}
	s.mu.Lock()
	n := s.r.Intn(int(max) - int(min) + 1)
	s.mu.Unlock()
	return min + uint8(n)
}
