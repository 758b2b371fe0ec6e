package athlete

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AthleteRepository interface {
	Create(a *Athlete) error
	Save(a *Athlete) error
	GetByID(id uint) (*Athlete, error)
	GetByUID(uid uuid.UUID) (*Athlete, error)

	// ResolveRef accepts either a numeric id or a UUID string.
	ResolveRef(ref string) (*Athlete, error)

	FindByExternalID(key, value string) (*Athlete, error)
	FindByName(first, last string) (*Athlete, error)
	FindByPlayerCode(code string) (*Athlete, error)

	// ClaimOwner stamps ownerID onto an unowned athlete. First writer wins:
	// the update is a no-op when an owner is already recorded.
	ClaimOwner(athleteID, ownerID uint) error

	ListAll() ([]Athlete, error)
	ListByOwner(ownerID uint) ([]Athlete, error)

	// ListOwnedWithMeasurements returns the caller's athletes that have at
	// least one measurement (the batch alert engine's default target set).
	ListOwnedWithMeasurements(ownerID uint) ([]Athlete, error)
}

type athleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository creates a new instance of AthleteRepository.
func NewAthleteRepository(db *gorm.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) Create(a *Athlete) error {
	return r.db.Create(a).Error
}

func (r *athleteRepository) Save(a *Athlete) error {
	return r.db.Save(a).Error
}

func (r *athleteRepository) GetByID(id uint) (*Athlete, error) {
	var a Athlete
	err := r.db.First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) GetByUID(uid uuid.UUID) (*Athlete, error) {
	var a Athlete
	err := r.db.Where("uid = ?", uid).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) ResolveRef(ref string) (*Athlete, error) {
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		return r.GetByID(uint(id))
	}
	if uid, err := uuid.Parse(ref); err == nil {
		return r.GetByUID(uid)
	}
	return nil, nil
}

func (r *athleteRepository) FindByExternalID(key, value string) (*Athlete, error) {
	var a Athlete
	err := r.db.Where("external_ids ->> ? = ?", key, value).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) FindByName(first, last string) (*Athlete, error) {
	var a Athlete
	err := r.db.Where("first_name = ? AND last_name = ?", first, last).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) FindByPlayerCode(code string) (*Athlete, error) {
	var a Athlete
	err := r.db.Where("external_ids -> 'manual' ->> 'player_code' = ?", code).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) ClaimOwner(athleteID, ownerID uint) error {
	return r.db.Model(&Athlete{}).
		Where("id = ? AND owner_id IS NULL", athleteID).
		Update("owner_id", ownerID).Error
}

func (r *athleteRepository) ListAll() ([]Athlete, error) {
	var athletes []Athlete
	err := r.db.Order("created_at DESC").Find(&athletes).Error
	return athletes, err
}

func (r *athleteRepository) ListByOwner(ownerID uint) ([]Athlete, error) {
	var athletes []Athlete
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&athletes).Error
	return athletes, err
}

func (r *athleteRepository) ListOwnedWithMeasurements(ownerID uint) ([]Athlete, error) {
	var athletes []Athlete
	err := r.db.
		Where("owner_id = ? AND EXISTS (SELECT 1 FROM measurements WHERE measurements.athlete_id = athletes.id AND measurements.deleted_at IS NULL)", ownerID).
		Order("created_at DESC").
		Find(&athletes).Error
	return athletes, err
}
