// Package rng provides the single seeded random source shared by every
// factory and synthesizer in a generation run, plus the weighted-choice
// primitive they all build on.
package rng

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

// Engine wraps one pseudo-random stream. The whole run draws from a single
// Engine in a fixed order, so the statistical shape of a run is determined
// by the seed alone.
type Engine struct {
	r *rand.Rand
}

func New(seed int64) *Engine {
	return &Engine{r: rand.New(rand.NewSource(seed))}
}

func (e *Engine) Float64() float64 {
	return e.r.Float64()
}

func (e *Engine) Intn(n int) int {
	return e.r.Intn(n)
}

// IntBetween returns a uniform integer in [min, max], both ends inclusive.
func (e *Engine) IntBetween(min, max int) int {
	return min + e.r.Intn(max-min+1)
}

// UniformRange returns a uniform float in [min, max).
func (e *Engine) UniformRange(min, max float64) float64 {
	return min + e.r.Float64()*(max-min)
}

func (e *Engine) Normal(mean, stddev float64) float64 {
	return mean + e.r.NormFloat64()*stddev
}

// LogNormal returns a draw whose logarithm is normally distributed with the
// given mean and sigma.
func (e *Engine) LogNormal(mean, sigma float64) float64 {
	return math.Exp(e.Normal(mean, sigma))
}

// Chance reports true with probability p.
func (e *Engine) Chance(p float64) bool {
	return e.r.Float64() < p
}

// TimeBetween returns a uniform instant in [start, end).
func (e *Engine) TimeBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	return start.Add(time.Duration(e.r.Int63n(int64(span))))
}

// WeightedIndex picks an index with probability weight[i] / sum(weights).
// Weights need not be normalized. A zero weight makes an index unselectable;
// an all-zero or negative vector is a configuration error.
func (e *Engine) WeightedIndex(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("weighted choice over empty weight vector")
	}

	prefix := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("negative weight %f at index %d", w, i)
		}
		total += w
		prefix[i] = total
	}
	if total <= 0 {
		return 0, fmt.Errorf("weighted choice requires a positive total weight")
	}

	u := e.r.Float64() * total
	idx := sort.Search(len(prefix), func(i int) bool { return prefix[i] > u })
	if idx >= len(prefix) {
		idx = len(prefix) - 1
	}
	return idx, nil
}

// WeightedChoice selects one item with probability proportional to its
// weight. items and weights must have equal length.
func WeightedChoice[T any](e *Engine, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) != len(weights) {
		return zero, fmt.Errorf("weighted choice: %d items but %d weights", len(items), len(weights))
	}
	idx, err := e.WeightedIndex(weights)
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}
