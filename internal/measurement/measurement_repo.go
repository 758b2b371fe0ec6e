package measurement

import (
	"time"

	"gorm.io/gorm"
)

type MeasurementRepository interface {
	Create(m *Measurement) error

	// WindowValues returns values for one athlete+metric series with
	// recorded_at in [from, to), ordered by time ascending.
	WindowValues(athleteID uint, metric string, from, to time.Time) ([]float64, error)

	// SumBetween sums values for one series with recorded_at in [from, to).
	SumBetween(athleteID uint, metric string, from, to time.Time) (float64, error)

	// AvgBetween averages values for one series with recorded_at in [from, to).
	// The count reports how many rows contributed.
	AvgBetween(athleteID uint, metric string, from, to time.Time) (float64, int64, error)

	ListSince(athleteID uint, since time.Time) ([]Measurement, error)
	ListByMetric(athleteID uint, metric string) ([]Measurement, error)
}

type measurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository creates a new instance of MeasurementRepository.
func NewMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &measurementRepository{db: db}
}

func (r *measurementRepository) Create(m *Measurement) error {
	return r.db.Create(m).Error
}

func (r *measurementRepository) WindowValues(athleteID uint, metric string, from, to time.Time) ([]float64, error) {
	var values []float64
	err := r.db.Model(&Measurement{}).
		Where("athlete_id = ? AND metric = ? AND recorded_at >= ? AND recorded_at < ?",
			athleteID, metric, from, to).
		Order("recorded_at ASC").
		Pluck("value", &values).Error
	return values, err
}

func (r *measurementRepository) SumBetween(athleteID uint, metric string, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.Model(&Measurement{}).
		Where("athlete_id = ? AND metric = ? AND recorded_at >= ? AND recorded_at < ?",
			athleteID, metric, from, to).
		Select("COALESCE(SUM(value), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *measurementRepository) AvgBetween(athleteID uint, metric string, from, to time.Time) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&Measurement{}).
		Where("athlete_id = ? AND metric = ? AND recorded_at >= ? AND recorded_at < ?",
			athleteID, metric, from, to).
		Select("COALESCE(AVG(value), 0) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	return row.Avg, row.Count, err
}

func (r *measurementRepository) ListSince(athleteID uint, since time.Time) ([]Measurement, error) {
	var measurements []Measurement
	err := r.db.
		Where("athlete_id = ? AND recorded_at >= ?", athleteID, since).
		Order("recorded_at ASC").
		Find(&measurements).Error
	return measurements, err
}

func (r *measurementRepository) ListByMetric(athleteID uint, metric string) ([]Measurement, error) {
	var measurements []Measurement
	err := r.db.
		Where("athlete_id = ? AND metric = ?", athleteID, metric).
		Order("recorded_at ASC").
		Find(&measurements).Error
	return measurements, err
}
