package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Claudiov13/JornSports-V2/internal/measurement"
)

func setupSummaryTest(t *testing.T) (*Summarizer, measurement.MeasurementRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&measurement.Measurement{}))
	repo := measurement.NewMeasurementRepository(db)
	return NewSummarizer(repo), repo
}

func seed(t *testing.T, repo measurement.MeasurementRepository, metric string, value float64, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&measurement.Measurement{
		AthleteID:  1,
		Metric:     metric,
		Value:      value,
		RecordedAt: at,
	}))
}

func TestMetricsSummaryFlagsFatigueAndLoadSpike(t *testing.T) {
	summarizer, repo := setupSummaryTest(t)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	// HRV: three recent readings at 40 against a baseline of 60.
	for day := 1; day <= 3; day++ {
		seed(t, repo, "hrv_rmssd", 40, now.AddDate(0, 0, -day))
	}
	for day := 5; day <= 13; day += 2 {
		seed(t, repo, "hrv_rmssd", 60, now.AddDate(0, 0, -day))
	}

	// Load: four chronic sessions plus a big acute week.
	for _, day := range []int{10, 15, 20, 25} {
		seed(t, repo, "total_distance", 4000, now.AddDate(0, 0, -day))
	}
	seed(t, repo, "total_distance", 12000, now.AddDate(0, 0, -2))

	summary, alerts, err := summarizer.MetricsSummary(1, now)

	require.NoError(t, err)
	assert.Contains(t, summary, "Recent HRV (3d): 40.0ms")
	assert.Contains(t, summary, "Baseline: 60.0ms")
	assert.Contains(t, summary, "ACWR")
	assert.Contains(t, alerts, "CRITICAL")
	assert.Contains(t, alerts, "INJURY RISK")
}

func TestMetricsSummaryShortHistory(t *testing.T) {
	summarizer, repo := setupSummaryTest(t)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	for day := 1; day <= 3; day++ {
		seed(t, repo, "hrv_rmssd", 55, now.AddDate(0, 0, -day))
	}

	summary, alerts, err := summarizer.MetricsSummary(1, now)

	require.NoError(t, err)
	assert.Contains(t, summary, "not enough history")
	assert.Empty(t, alerts)
}

func TestMetricsSummaryNoData(t *testing.T) {
	summarizer, _ := setupSummaryTest(t)

	summary, alerts, err := summarizer.MetricsSummary(1, time.Now().UTC())

	require.NoError(t, err)
	assert.Empty(t, summary)
	assert.Empty(t, alerts)
}
