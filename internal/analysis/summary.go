package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Claudiov13/JornSports-V2/internal/measurement"
)

const summaryWindowDays = 28

// Summarizer condenses an athlete's recent physiology into a short text
// block for the LLM prompt, plus rule-based alert lines that are also
// returned raw to the client.
type Summarizer struct {
	measurements measurement.MeasurementRepository
}

func NewSummarizer(measurements measurement.MeasurementRepository) *Summarizer {
	return &Summarizer{measurements: measurements}
}

// MetricsSummary computes the HRV-drop check and the acute:chronic workload
// ratio (ACWR) over the last 28 days. Both return values are newline-joined
// human-readable lines; either may be empty when there is too little data.
func (s *Summarizer) MetricsSummary(athleteID uint, now time.Time) (summary string, alerts string, err error) {
	since := now.AddDate(0, 0, -summaryWindowDays)
	rows, err := s.measurements.ListSince(athleteID, since)
	if err != nil {
		return "", "", err
	}

	byMetric := make(map[string][]measurement.Measurement)
	for _, m := range rows {
		byMetric[m.Metric] = append(byMetric[m.Metric], m)
	}
	for _, series := range byMetric {
		sort.Slice(series, func(i, j int) bool {
			return series[i].RecordedAt.After(series[j].RecordedAt)
		})
	}

	var summaryLines, alertLines []string

	// HRV: three most recent readings against everything older. Needs at
	// least five baseline points to call it a trend.
	if vals := byMetric["hrv_rmssd"]; len(vals) >= 3 {
		avg3 := meanValues(vals[:3])
		rest := vals[3:]
		if len(rest) >= 5 {
			chronic := meanValues(rest)
			dropPct := (chronic - avg3) / chronic * 100
			summaryLines = append(summaryLines,
				fmt.Sprintf("Recent HRV (3d): %.1fms | Baseline: %.1fms", avg3, chronic))
			switch {
			case dropPct > 20:
				alertLines = append(alertLines, fmt.Sprintf(
					"CRITICAL: HRV down %.1f%%. Strong sign of accumulated fatigue or poor recovery.", dropPct))
			case dropPct > 10:
				alertLines = append(alertLines, fmt.Sprintf(
					"WATCH: HRV down %.1f%%. Monitor training load.", dropPct))
			}
		} else {
			summaryLines = append(summaryLines,
				fmt.Sprintf("Recent HRV: %.1fms (not enough history for a baseline)", avg3))
		}
	}

	// ACWR: last 7 days of distance against the weekly average of the month.
	if vals := byMetric["total_distance"]; len(vals) > 0 {
		var acute, chronic float64
		for _, m := range vals {
			chronic += m.Value
			if now.Sub(m.RecordedAt) <= 7*24*time.Hour {
				acute += m.Value
			}
		}
		weeklyAvg := chronic / 4
		if weeklyAvg > 0 {
			acwr := acute / weeklyAvg
			summaryLines = append(summaryLines, fmt.Sprintf("ACWR (acute/chronic load): %.2f", acwr))
			switch {
			case acwr > 1.5:
				alertLines = append(alertLines, fmt.Sprintf(
					"INJURY RISK: ACWR of %.2f (very high). Acute load spike.", acwr))
			case acwr < 0.8:
				alertLines = append(alertLines, fmt.Sprintf(
					"Detraining: ACWR of %.2f (low).", acwr))
			}
		}
	}

	return strings.Join(summaryLines, "\n"), strings.Join(alertLines, "\n"), nil
}

func meanValues(ms []measurement.Measurement) float64 {
	var sum float64
	for _, m := range ms {
		sum += m.Value
	}
	return sum / float64(len(ms))
}
