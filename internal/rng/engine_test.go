package rng

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedIndexDistribution(t *testing.T) {
	e := New(42)
	weights := []float64{1, 0, 3}

	counts := make([]int, len(weights))
	const draws = 40000
	for i := 0; i < draws; i++ {
		idx, err := e.WeightedIndex(weights)
		require.NoError(t, err)
		counts[idx]++
	}

	assert.Zero(t, counts[1], "zero-weight index must never be selected")
	assert.InDelta(t, 0.25, float64(counts[0])/draws, 0.02)
	assert.InDelta(t, 0.75, float64(counts[2])/draws, 0.02)
}

func TestWeightedIndexErrors(t *testing.T) {
	e := New(1)

	_, err := e.WeightedIndex(nil)
	assert.Error(t, err)

	_, err = e.WeightedIndex([]float64{0, 0, 0})
	assert.Error(t, err)

	_, err = e.WeightedIndex([]float64{1, -0.5})
	assert.Error(t, err)
}

func TestWeightedChoiceLengthMismatch(t *testing.T) {
	e := New(1)
	_, err := WeightedChoice(e, []string{"a", "b"}, []float64{1})
	assert.Error(t, err)
}

func TestIntBetweenInclusive(t *testing.T) {
	e := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := e.IntBetween(2, 4)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "both endpoints should be reachable")
}

func TestLogNormalPositive(t *testing.T) {
	e := New(3)
	for i := 0; i < 1000; i++ {
		assert.Greater(t, e.LogNormal(1.1, 0.3), 0.0)
	}
}

func TestNormalMoments(t *testing.T) {
	e := New(5)
	const draws = 50000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < draws; i++ {
		v := e.Normal(15, 5)
		sum += v
		sumSq += v * v
	}
	mean := sum / draws
	variance := sumSq/draws - mean*mean

	assert.InDelta(t, 15.0, mean, 0.1)
	assert.InDelta(t, 25.0, variance, 1.0)
}

func TestTimeBetweenRange(t *testing.T) {
	e := New(11)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		v := e.TimeBetween(start, end)
		assert.False(t, v.Before(start))
		assert.True(t, v.Before(end))
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}
