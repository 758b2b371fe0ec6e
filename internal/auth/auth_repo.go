package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateCoach(coach *Coach) error
	GetCoachByEmail(email string) (*Coach, error)
	GetCoachByID(id uint) (*Coach, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateCoach(coach *Coach) error {
	coach.Email = strings.ToLower(coach.Email)
	return r.db.Create(coach).Error
}

func (r *authRepository) GetCoachByEmail(email string) (*Coach, error) {
	var coach Coach
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&coach).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coach, nil
}

func (r *authRepository) GetCoachByID(id uint) (*Coach, error) {
	var coach Coach
	if err := r.db.First(&coach, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coach, nil
}
