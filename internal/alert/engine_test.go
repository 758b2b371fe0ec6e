package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
)

func setupAlertTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&athlete.Athlete{}, &measurement.Measurement{}, &Alert{}))
	return db
}

type engineFixture struct {
	db           *gorm.DB
	alerts       AlertRepository
	measurements measurement.MeasurementRepository
	target       []athlete.Athlete
	now          time.Time
}

func newEngineFixture(t *testing.T) *engineFixture {
	db := setupAlertTestDB(t)
	a := &athlete.Athlete{FirstName: "Ana", LastName: "Silva"}
	require.NoError(t, athlete.NewAthleteRepository(db).Create(a))
	return &engineFixture{
		db:           db,
		alerts:       NewAlertRepository(db),
		measurements: measurement.NewMeasurementRepository(db),
		target:       []athlete.Athlete{*a},
		// Dedupe compares against alert creation timestamps, so the
		// reference time has to be the real clock.
		now: time.Now().UTC(),
	}
}

func (f *engineFixture) add(t *testing.T, metric string, value float64, daysAgo int) {
	t.Helper()
	err := f.measurements.Create(&measurement.Measurement{
		AthleteID:  f.target[0].ID,
		Metric:     metric,
		Value:      value,
		RecordedAt: f.now.AddDate(0, 0, -daysAgo),
	})
	require.NoError(t, err)
}

// seedChronicLoad writes one 4000m session per prior week, so the weekly
// baseline over the previous four weeks is exactly 4000.
func (f *engineFixture) seedChronicLoad(t *testing.T) {
	for _, daysAgo := range []int{10, 17, 24, 31} {
		f.add(t, "total_distance", 4000, daysAgo)
	}
}

func TestEngineOverloadTriggers(t *testing.T) {
	f := newEngineFixture(t)
	f.seedChronicLoad(t)
	// 7000 in the acute week vs a limit of 1.5 * 4000 = 6000.
	f.add(t, "total_distance", 3500, 1)
	f.add(t, "total_distance", 3500, 2)

	engine := NewEngine(f.alerts, f.measurements, 24*time.Hour)
	created, err := engine.Run(f.target, f.now)

	require.NoError(t, err)
	assert.Equal(t, 1, created)

	alerts, err := f.alerts.ListByAthlete(f.target[0].ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, SeverityHigh, alerts[0].Level)
	assert.Equal(t, "total_distance", alerts[0].Metric)
	assert.Equal(t, RuleOverload, alerts[0].Payload.GetString("rule"))
}

func TestEngineOverloadBelowLimitIsQuiet(t *testing.T) {
	f := newEngineFixture(t)
	f.seedChronicLoad(t)
	// 5000 acute is well under the 6000 limit.
	f.add(t, "total_distance", 5000, 1)

	engine := NewEngine(f.alerts, f.measurements, 24*time.Hour)
	created, err := engine.Run(f.target, f.now)

	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestEngineOverloadNeedsChronicHistory(t *testing.T) {
	f := newEngineFixture(t)
	// A big acute week with no prior history must not fire.
	f.add(t, "total_distance", 9000, 1)

	engine := NewEngine(f.alerts, f.measurements, 24*time.Hour)
	created, err := engine.Run(f.target, f.now)

	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestEngineOverloadPrefersHighSpeedDistance(t *testing.T) {
	f := newEngineFixture(t)
	// high_speed_distance data exists, so total_distance is ignored.
	for _, daysAgo := range []int{10, 17, 24, 31} {
		f.add(t, "high_speed_distance", 400, daysAgo)
	}
	f.add(t, "high_speed_distance", 700, 1)

	engine := NewEngine(f.alerts, f.measurements, 24*time.Hour)
	created, err := engine.Run(f.target, f.now)

	require.NoError(t, err)
	assert.Equal(t, 1, created)

	alerts, err := f.alerts.ListByAthlete(f.target[0].ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "high_speed_distance", alerts[0].Metric)
}

func TestEngineHRVDropTriggers(t *testing.T) {
	f := newEngineFixture(t)
	// Baseline around 60 in [now-24d, now-3d).
	for daysAgo := 4; daysAgo <= 20; daysAgo += 2 {
		f.add(t, "hrv_rmssd", 60, daysAgo)
	}
	// Recent 3-day average of 40 is under 0.8 * 60 = 48.
	f.add(t, "hrv_rmssd", 40, 1)
	f.add(t, "hrv_rmssd", 40, 2)

	engine := NewEngine(f.alerts, f.measurements, 24*time.Hour)
	created, err := engine.Run(f.target, f.now)

	require.NoError(t, err)
	assert.Equal(t, 1, created)

	alerts, err := f.alerts.ListByAthlete(f.target[0].ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, RuleHRVDrop, alerts[0].Payload.GetString("rule"))
	assert.InDelta(t, 40.0, alerts[0].Payload["last3_avg"], 0.01)
	assert.InDelta(t, 60.0, alerts[0].Payload["prev21_avg"], 0.01)
}

func TestEngineHRVDropWithinToleranceIsQuiet(t *testing.T) {
	f := newEngineFixture(t)
	for daysAgo := 4; daysAgo <= 20; daysAgo += 2 {
		f.add(t, "hrv_rmssd", 60, daysAgo)
	}
	// 50 is above the 48 threshold: a dip, not a drop.
	f.add(t, "hrv_rmssd", 50, 1)

	engine := NewEngine(f.alerts, f.measurements, 24*time.Hour)
	created, err := engine.Run(f.target, f.now)

	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestEngineHRVDropNeedsBaseline(t *testing.T) {
	f := newEngineFixture(t)
	// Recent readings only; no baseline to compare against.
	f.add(t, "hrv_rmssd", 30, 1)
	f.add(t, "hrv_rmssd", 30, 2)

	engine := NewEngine(f.alerts, f.measurements, 24*time.Hour)
	created, err := engine.Run(f.target, f.now)

	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestEngineDedupeSuppressesRepeatRuns(t *testing.T) {
	f := newEngineFixture(t)
	f.seedChronicLoad(t)
	f.add(t, "total_distance", 7000, 1)

	engine := NewEngine(f.alerts, f.measurements, 24*time.Hour)

	created, err := engine.Run(f.target, f.now)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// Same conditions, same day: suppressed.
	created, err = engine.Run(f.target, f.now)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	alerts, err := f.alerts.ListByAthlete(f.target[0].ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestEngineZeroDedupeWindowReEmits(t *testing.T) {
	f := newEngineFixture(t)
	f.seedChronicLoad(t)
	f.add(t, "total_distance", 7000, 1)

	engine := NewEngine(f.alerts, f.measurements, 0)

	for i := 0; i < 2; i++ {
		created, err := engine.Run(f.target, f.now)
		require.NoError(t, err)
		assert.Equal(t, 1, created)
	}

	alerts, err := f.alerts.ListByAthlete(f.target[0].ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestFromScoreThresholds(t *testing.T) {
	ts := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	low := FromScore(1, "hrv_rmssd", 38, 22.5, ts)
	require.NotNil(t, low)
	assert.Equal(t, SeverityWarning, low.Level)
	assert.Equal(t, RuleLowHRV, low.Payload.GetString("rule"))

	assert.Nil(t, FromScore(1, "hrv_rmssd", 60, 55, ts))

	high := FromScore(1, "ldh", 300, 80, ts)
	require.NotNil(t, high)
	assert.Equal(t, SeverityCritical, high.Level)
	assert.Equal(t, RuleHighLDH, high.Payload.GetString("rule"))

	assert.Nil(t, FromScore(1, "ldh", 200, 10, ts))
	assert.Nil(t, FromScore(1, "total_distance", 99999, 1, ts))
}
