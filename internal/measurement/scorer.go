package measurement

import (
	"math"
	"strings"
)

// WindowDays is the trailing history window used for percentile scoring.
const WindowDays = 14

// Metrics where a higher reading is a bad sign (enzyme/stress markers);
// their z-score is negated so elevated values map to low scores.
var lowerIsBetter = map[string]bool{
	"LDH":      true,
	"CORTISOL": true,
	"AST":      true,
	"GLICOSE":  true,
}

// HigherBetter reports the scoring directionality for a metric.
func HigherBetter(metric string) bool {
	return !lowerIsBetter[strings.ToUpper(metric)]
}

// ScoreFromWindow maps a new observation to a 0-100 percentile-style score
// against the athlete's own trailing window for the same metric.
//
// An empty window degrades to a neutral 50. The window's population standard
// deviation is floored at a small epsilon so a flat history still scores the
// matching value near 50 instead of dividing by zero.
func ScoreFromWindow(value float64, window []float64, higherBetter bool) float64 {
	if len(window) == 0 {
		return 50.0
	}

	var sum float64
	for _, v := range window {
		sum += v
	}
	mu := sum / float64(len(window))

	var sq float64
	for _, v := range window {
		d := v - mu
		sq += d * d
	}
	sd := math.Sqrt(sq / float64(len(window)))
	if sd == 0 {
		sd = 1e-6
	}

	z := (value - mu) / sd
	if !higherBetter {
		z = -z
	}

	pct := 0.5 * (1 + math.Erf(z/math.Sqrt2))
	return math.Round(100*pct*100) / 100
}
