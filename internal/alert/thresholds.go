package alert

import (
	"fmt"
	"time"

	"github.com/Claudiov13/JornSports-V2/internal/models"
)

const (
	lowHRVScoreLimit = 30.0
	highLDHLimit     = 250.0
)

// FromScore applies the fixed per-measurement threshold rules after window
// scoring: a poor HRV score is a WARNING, an elevated LDH reading is CRITICAL
// regardless of score. Returns nil when nothing triggers.
func FromScore(athleteID uint, metric string, value, score float64, ts time.Time) *Alert {
	switch metric {
	case "hrv_rmssd":
		if score < lowHRVScoreLimit {
			return &Alert{
				AthleteID: athleteID,
				Level:     SeverityWarning,
				Metric:    metric,
				Message:   fmt.Sprintf("Low HRV (score %.2f)", score),
				Payload: models.JSONMap{
					"rule":  RuleLowHRV,
					"value": value,
					"score": score,
					"ts":    ts.UTC().Format(time.RFC3339),
				},
			}
		}
	case "ldh":
		if value > highLDHLimit {
			return &Alert{
				AthleteID: athleteID,
				Level:     SeverityCritical,
				Metric:    metric,
				Message:   fmt.Sprintf("Elevated LDH (%.0f)", value),
				Payload: models.JSONMap{
					"rule":  RuleHighLDH,
					"value": value,
					"ts":    ts.UTC().Format(time.RFC3339),
				},
			}
		}
	}
	return nil
}
