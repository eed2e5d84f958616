package engine

import (
	"math/rand"
	"sync"
)

// Noise is the engine's only source of randomness. The simulated heuristics
// (pitch fill-in when no series was supplied, the nervousness draw, the
// financial-coherence placeholder) draw from it; everything else in the
// scoring pipeline is deterministic. Tests inject Fixed values.
type Noise interface {
	Float64() float64
}

type randNoise struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewNoise returns a seeded pseudo-random noise source
func NewNoise(seed int64) Noise {
	return &randNoise{r: rand.New(rand.NewSource(seed))}
}

func (n *randNoise) Float64() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.r.Float64()
}

type fixedNoise float64

// Fixed returns a noise source that always yields v
func Fixed(v float64) Noise {
	return fixedNoise(v)
}

func (f fixedNoise) Float64() float64 {
	return float64(f)
}
