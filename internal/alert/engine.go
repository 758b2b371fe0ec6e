package alert

import (
	"fmt"
	"time"

	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	"github.com/Claudiov13/JornSports-V2/internal/models"
)

const (
	// Overload: acute 7-day load vs the weekly average of the prior 4 weeks.
	overloadAcuteDays    = 7
	overloadChronicDays  = 28
	overloadRatioLimit   = 1.5
	overloadLoadMetric   = "high_speed_distance"
	overloadLoadFallback = "total_distance"

	// HRV drop: 3-day average vs the 21-day baseline ending 3 days ago.
	hrvAcuteDays   = 3
	hrvChronicDays = 21
	hrvDropRatio   = 0.8
	hrvMetric      = "hrv_rmssd"
)

// Engine evaluates the longitudinal alert rules over stored measurements.
// Each rule runs independently per athlete; a run may emit zero, one, or two
// alerts for an athlete. Re-emitting a rule that already fired within the
// dedupe window is suppressed; a zero window restores cumulative behavior.
type Engine struct {
	alerts       AlertRepository
	measurements measurement.MeasurementRepository
	dedupeWindow time.Duration
}

func NewEngine(alerts AlertRepository, measurements measurement.MeasurementRepository, dedupeWindow time.Duration) *Engine {
	return &Engine{
		alerts:       alerts,
		measurements: measurements,
		dedupeWindow: dedupeWindow,
	}
}

// Run evaluates both rules for every target athlete and persists triggered
// alerts. Returns the number of alerts created.
func (e *Engine) Run(athletes []athlete.Athlete, now time.Time) (int, error) {
	created := 0
	for i := range athletes {
		n, err := e.runForAthlete(athletes[i].ID, now)
		if err != nil {
			return created, err
		}
		created += n
	}
	return created, nil
}

func (e *Engine) runForAthlete(athleteID uint, now time.Time) (int, error) {
	created := 0

	a, err := e.evaluateOverload(athleteID, now)
	if err != nil {
		return created, err
	}
	if a != nil {
		ok, err := e.persist(a, now)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	a, err = e.evaluateHRVDrop(athleteID, now)
	if err != nil {
		return created, err
	}
	if a != nil {
		ok, err := e.persist(a, now)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	return created, nil
}

// evaluateOverload flags an acute training load spike: the last 7 days of
// high-speed distance (total distance when no HSD was recorded) exceeding
// 150% of the weekly average over the previous 4 weeks.
func (e *Engine) evaluateOverload(athleteID uint, now time.Time) (*Alert, error) {
	metric := overloadLoadMetric
	last7, err := e.measurements.SumBetween(athleteID, metric, now.AddDate(0, 0, -overloadAcuteDays), now)
	if err != nil {
		return nil, err
	}
	if last7 == 0 {
		metric = overloadLoadFallback
		last7, err = e.measurements.SumBetween(athleteID, metric, now.AddDate(0, 0, -overloadAcuteDays), now)
		if err != nil {
			return nil, err
		}
	}

	chronicFrom := now.AddDate(0, 0, -(overloadAcuteDays + overloadChronicDays))
	chronicTo := now.AddDate(0, 0, -overloadAcuteDays)
	prev28, err := e.measurements.SumBetween(athleteID, metric, chronicFrom, chronicTo)
	if err != nil {
		return nil, err
	}

	weeklyAvg := prev28 / 4
	if weeklyAvg <= 0 || last7 <= overloadRatioLimit*weeklyAvg {
		return nil, nil
	}

	return &Alert{
		AthleteID: athleteID,
		Level:     SeverityHigh,
		Metric:    metric,
		Message:   fmt.Sprintf("Acute load spike: %.0f in the last 7 days vs weekly baseline %.0f", last7, weeklyAvg),
		Payload: models.JSONMap{
			"rule":             RuleOverload,
			"last7":            last7,
			"weekly_avg_prev4": weeklyAvg,
		},
	}, nil
}

// evaluateHRVDrop flags accumulated fatigue: the 3-day rMSSD average sitting
// more than 20% below the 21-day baseline that ended 3 days ago.
func (e *Engine) evaluateHRVDrop(athleteID uint, now time.Time) (*Alert, error) {
	last3, count, err := e.measurements.AvgBetween(athleteID, hrvMetric, now.AddDate(0, 0, -hrvAcuteDays), now)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	baselineFrom := now.AddDate(0, 0, -(hrvAcuteDays + hrvChronicDays))
	baselineTo := now.AddDate(0, 0, -hrvAcuteDays)
	baseline, baseCount, err := e.measurements.AvgBetween(athleteID, hrvMetric, baselineFrom, baselineTo)
	if err != nil {
		return nil, err
	}
	if baseCount == 0 || baseline <= 0 || last3 >= hrvDropRatio*baseline {
		return nil, nil
	}

	return &Alert{
		AthleteID: athleteID,
		Level:     SeverityHigh,
		Metric:    hrvMetric,
		Message:   fmt.Sprintf("HRV drop: 3-day average %.1f vs 21-day baseline %.1f", last3, baseline),
		Payload: models.JSONMap{
			"rule":       RuleHRVDrop,
			"last3_avg":  last3,
			"prev21_avg": baseline,
		},
	}, nil
}

// persist writes the alert unless the same rule fired for the athlete within
// the dedupe window. Reports whether a row was created.
func (e *Engine) persist(a *Alert, now time.Time) (bool, error) {
	if e.dedupeWindow > 0 {
		rule := a.Payload.GetString("rule")
		dup, err := e.alerts.ExistsRecent(a.AthleteID, rule, now.Add(-e.dedupeWindow))
		if err != nil {
			return false, err
		}
		if dup {
			return false, nil
		}
	}
	if err := e.alerts.Create(a); err != nil {
		return false, err
	}
	return true, nil
}
