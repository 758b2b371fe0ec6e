package auth

import (
	"time"

	"gorm.io/gorm"
)

const DefaultCoachRole = "coach"

// Coach is the authenticated account that owns athletes and uploads telemetry.
type Coach struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:coach" json:"role"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"coach@club.com"`
	Password string `json:"password" binding:"required,min=8,max=128" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"coach@club.com"`
	Password string `json:"password" binding:"required,min=1,max=128" example:"password123"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
	ExpiresIn   int    `json:"expires_in"` // seconds
}

type CoachResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FilterCoachRecord(coach *Coach) CoachResponse {
	return CoachResponse{
		ID:        coach.ID,
		Email:     coach.Email,
		Role:      coach.Role,
		CreatedAt: coach.CreatedAt,
	}
}
