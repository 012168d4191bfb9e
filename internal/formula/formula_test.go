package formula_test

import (
	"testing"

	"github.com/mkovacevic/liftsync/internal/formula"

	"github.com/stretchr/testify/assert"
)

func TestEstimateBrzycki(t *testing.T) {
	// single rep: the lift is the max
	assert.Equal(t, 100.0, formula.EstimateBrzycki(100, 1))
	assert.Equal(t, 42.5, formula.EstimateBrzycki(42.5, 1))

	// outside of the defined region the weight comes back unchanged
	assert.Equal(t, 100.0, formula.EstimateBrzycki(100, 37))
	assert.Equal(t, 100.0, formula.EstimateBrzycki(100, 50))
	assert.Equal(t, 100.0, formula.EstimateBrzycki(100, 0))

	// 100 * 36 / 32
	assert.InDelta(t, 112.5, formula.EstimateBrzycki(100, 5), 0.001)
}

func TestEstimateEpley(t *testing.T) {
	assert.Equal(t, 100.0, formula.EstimateEpley(100, 1))
	assert.Equal(t, 100.0, formula.EstimateEpley(100, 0))

	// 100 * (1 + 10/30)
	assert.InDelta(t, 133.333, formula.EstimateEpley(100, 10), 0.001)
}

func TestEstimate(t *testing.T) {
	// default formula is brzycki
	assert.Equal(t, 112.5, formula.Estimate("", 100, 5))
	assert.Equal(t, 112.5, formula.Estimate(formula.Brzycki, 100, 5))

	// epley result is rounded to one decimal
	assert.Equal(t, 133.3, formula.Estimate(formula.Epley, 100, 10))

	// degenerate inputs yield zero instead of an error
	assert.Equal(t, 0.0, formula.Estimate(formula.Brzycki, 0, 5))
	assert.Equal(t, 0.0, formula.Estimate(formula.Brzycki, -10, 5))
	assert.Equal(t, 0.0, formula.Estimate(formula.Brzycki, 100, 0))
	assert.Equal(t, 0.0, formula.Estimate(formula.Brzycki, 100, -3))
}

func TestBestEstimate(t *testing.T) {
	assert.Equal(t, 0.0, formula.BestEstimate(formula.Brzycki, nil))
	assert.Equal(t, 0.0, formula.BestEstimate(formula.Brzycki, []formula.Observation{}))

	observations := []formula.Observation{
		{Weight: 100, Reps: 5}, // 112.5
		{Weight: 90, Reps: 8},  // 90 * 36 / 29 = 111.7
	}
	assert.Equal(t, 112.5, formula.BestEstimate(formula.Brzycki, observations))

	// sets with nonsense values just contribute zero
	observations = append(observations, formula.Observation{Weight: -1, Reps: 100})
	assert.Equal(t, 112.5, formula.BestEstimate(formula.Brzycki, observations))
}
