package generator

import (
	"math/rand"

	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
)

// Sampler draws weighted outcomes from a single shared RNG. Every draw
// consumes the stream, so call sites must keep a fixed order to stay
// reproducible under a seed.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler wraps an RNG in a sampler
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Pick returns one outcome from a weight table. Weights are relative and
// normalized internally; zero-weight entries are never chosen.
func (s *Sampler) Pick(table []genconfig.Weight) string {
	total := 0.0
	for _, w := range table {
		total += w.Weight
	}

	r := s.rng.Float64() * total
	last := 0
	for i, w := range table {
		if w.Weight <= 0 {
			continue
		}
		last = i
		r -= w.Weight
		if r < 0 {
			return w.Value
		}
	}
	return table[last].Value
}

// PickIndex returns an index of the weights slice, weighted by its values
func (s *Sampler) PickIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := s.rng.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		r -= w
		if r < 0 {
			return i
		}
	}
	return last
}

// UniformFloat returns a uniform draw from [min, max)
func (s *Sampler) UniformFloat(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// IntBetween returns a uniform draw from [min, max], both inclusive
func (s *Sampler) IntBetween(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// Bernoulli returns true with probability p
func (s *Sampler) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// PickString returns a uniform element of a non-empty slice
func (s *Sampler) PickString(values []string) string {
	return values[s.rng.Intn(len(values))]
}
