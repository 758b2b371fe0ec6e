package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreFromWindowEmptyWindowIsNeutral(t *testing.T) {
	assert.Equal(t, 50.0, ScoreFromWindow(123.4, nil, true))
	assert.Equal(t, 50.0, ScoreFromWindow(123.4, []float64{}, false))
}

func TestScoreFromWindowFlatHistoryMatchingValue(t *testing.T) {
	window := []float64{10, 10, 10, 10}

	// Zero variance is floored, so a value equal to the flat history
	// scores exactly neutral instead of dividing by zero.
	assert.Equal(t, 50.0, ScoreFromWindow(10, window, true))
}

func TestScoreFromWindowExtremeValue(t *testing.T) {
	window := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 100.0, ScoreFromWindow(10, window, true), 0.01)
	assert.InDelta(t, 0.0, ScoreFromWindow(10, window, false), 0.01)
}

func TestScoreFromWindowDirectionality(t *testing.T) {
	window := []float64{1, 2, 3, 4, 5}

	higher := ScoreFromWindow(4, window, true)
	lower := ScoreFromWindow(4, window, false)

	assert.Greater(t, higher, 50.0)
	assert.Less(t, lower, 50.0)
	// Negating the z-score mirrors the score around 50.
	assert.InDelta(t, 100.0, higher+lower, 0.02)
}

func TestScoreFromWindowBounds(t *testing.T) {
	window := []float64{40, 55, 61, 47, 52}
	for _, v := range []float64{-1000, -5, 0, 50, 70, 1000} {
		score := ScoreFromWindow(v, window, true)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestHigherBetter(t *testing.T) {
	assert.True(t, HigherBetter("hrv_rmssd"))
	assert.True(t, HigherBetter("total_distance"))
	assert.False(t, HigherBetter("ldh"))
	assert.False(t, HigherBetter("LDH"))
	assert.False(t, HigherBetter("cortisol"))
	assert.False(t, HigherBetter("ast"))
	assert.False(t, HigherBetter("glicose"))
}
