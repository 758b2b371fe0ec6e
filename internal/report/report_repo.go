package report

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *Report) error
	GetByID(id uint) (*Report, error)
	List(athleteName string) ([]Report, error)
	Delete(id uint) (bool, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) GetByID(id uint) (*Report, error) {
	var report Report
	err := r.db.First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns reports newest first, optionally filtered by athlete name
// (case-insensitive exact match).
func (r *reportRepository) List(athleteName string) ([]Report, error) {
	var reports []Report
	query := r.db.Order("created_at DESC")
	if athleteName != "" {
		query = query.Where("lower(athlete_name) = ?", strings.ToLower(athleteName))
	}
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&Report{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
