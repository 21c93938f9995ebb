package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Weighted pairs a value with its relative draw weight.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Sampler draws values from a weighted pool with replacement.
type Sampler[T any] struct {
	pool  []Weighted[T]
	total int
	rng   *rand.Rand
}

// NewSampler validates the pool. An empty pool, a negative weight or a pool
// whose weights are all zero is a configuration error.
func NewSampler[T any](pool []Weighted[T], rng *rand.Rand) (*Sampler[T], error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPool)
	}
	total := 0
	for i, w := range pool {
		if w.Weight < 0 {
			return nil, fmt.Errorf("%w: entry %d has negative weight %d", ErrInvalidPool, i, w.Weight)
		}
		total += w.Weight
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrInvalidPool)
	}
	return &Sampler[T]{pool: pool, total: total, rng: rng}, nil
}

// Draw returns one value, each with probability weight/total.
func (s *Sampler[T]) Draw() T {
	roll := s.rng.Intn(s.total)
	for _, w := range s.pool {
		if roll < w.Weight {
			return w.Value
		}
		roll -= w.Weight
	}
	// unreachable: roll < total
	return s.pool[len(s.pool)-1].Value
}

// DrawN returns n independent draws.
func (s *Sampler[T]) DrawN(n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = s.Draw()
	}
	return out
}

// Permutation expands the pool into a multiset holding each value weight
// times, shuffled.
func (s *Sampler[T]) Permutation() []T {
	out := make([]T, 0, s.total)
	for _, w := range s.pool {
		for i := 0; i < w.Weight; i++ {
			out = append(out, w.Value)
		}
	}
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
