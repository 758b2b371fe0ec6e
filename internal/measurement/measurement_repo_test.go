package measurement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMeasurementTestDB(t *testing.T) MeasurementRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Measurement{}))
	return NewMeasurementRepository(db)
}

func addAt(t *testing.T, repo MeasurementRepository, athleteID uint, metric string, value float64, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&Measurement{
		AthleteID:  athleteID,
		Metric:     metric,
		Value:      value,
		RecordedAt: at,
	}))
}

func TestWindowValuesBoundsAndOrder(t *testing.T) {
	repo := setupMeasurementTestDB(t)
	base := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	addAt(t, repo, 1, "hrv_rmssd", 10, base.AddDate(0, 0, -15)) // before window
	addAt(t, repo, 1, "hrv_rmssd", 20, base.AddDate(0, 0, -14)) // lower bound, included
	addAt(t, repo, 1, "hrv_rmssd", 40, base.AddDate(0, 0, -1))
	addAt(t, repo, 1, "hrv_rmssd", 30, base.AddDate(0, 0, -7))
	addAt(t, repo, 1, "hrv_rmssd", 99, base) // upper bound, excluded
	addAt(t, repo, 1, "total_distance", 5000, base.AddDate(0, 0, -2))
	addAt(t, repo, 2, "hrv_rmssd", 77, base.AddDate(0, 0, -2))

	values, err := repo.WindowValues(1, "hrv_rmssd", base.AddDate(0, 0, -WindowDays), base)

	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30, 40}, values)
}

func TestSumBetween(t *testing.T) {
	repo := setupMeasurementTestDB(t)
	base := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	addAt(t, repo, 1, "total_distance", 4000, base.AddDate(0, 0, -3))
	addAt(t, repo, 1, "total_distance", 3000, base.AddDate(0, 0, -1))

	sum, err := repo.SumBetween(1, "total_distance", base.AddDate(0, 0, -7), base)
	require.NoError(t, err)
	assert.Equal(t, 7000.0, sum)

	// Empty ranges sum to zero, not an error.
	sum, err = repo.SumBetween(1, "total_distance", base.AddDate(0, 0, -30), base.AddDate(0, 0, -20))
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum)
}

func TestAvgBetweenReportsCount(t *testing.T) {
	repo := setupMeasurementTestDB(t)
	base := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	addAt(t, repo, 1, "hrv_rmssd", 50, base.AddDate(0, 0, -2))
	addAt(t, repo, 1, "hrv_rmssd", 70, base.AddDate(0, 0, -1))

	avg, count, err := repo.AvgBetween(1, "hrv_rmssd", base.AddDate(0, 0, -3), base)
	require.NoError(t, err)
	assert.Equal(t, 60.0, avg)
	assert.Equal(t, int64(2), count)

	_, count, err = repo.AvgBetween(1, "hrv_rmssd", base.AddDate(0, 0, -30), base.AddDate(0, 0, -20))
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
