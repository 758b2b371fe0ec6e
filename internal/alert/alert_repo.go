package alert

import (
	"time"

	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(a *Alert) error
	ListAll() ([]Alert, error)
	ListByAthlete(athleteID uint) ([]Alert, error)

	// Acknowledge flips the flag; reports whether a row was updated.
	Acknowledge(id uint) (bool, error)

	// ExistsRecent reports whether the same rule already fired for the
	// athlete since the given time (dedupe check).
	ExistsRecent(athleteID uint, rule string, since time.Time) (bool, error)
}

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new instance of AlertRepository.
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(a *Alert) error {
	return r.db.Create(a).Error
}

func (r *alertRepository) ListAll() ([]Alert, error) {
	var alerts []Alert
	err := r.db.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *alertRepository) ListByAthlete(athleteID uint) ([]Alert, error) {
	var alerts []Alert
	err := r.db.Where("athlete_id = ?", athleteID).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *alertRepository) Acknowledge(id uint) (bool, error) {
	result := r.db.Model(&Alert{}).Where("id = ?", id).Update("acknowledged", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *alertRepository) ExistsRecent(athleteID uint, rule string, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&Alert{}).
		Where("athlete_id = ? AND payload ->> 'rule' = ? AND created_at >= ?", athleteID, rule, since).
		Count(&count).Error
	return count > 0, err
}
