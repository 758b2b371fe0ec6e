package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Claudiov13/JornSports-V2/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthCoachIDKey    = "auth_coach_id"
	AuthCoachEmailKey = "auth_coach_email"
)

func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		// Token may outlive the coach row; the DB stays the source of truth.
		var exists bool
		if err := db.Table("coaches").
			Select("count(*) > 0").
			Where("id = ? AND deleted_at IS NULL", claims.CoachID).
			Find(&exists).Error; err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Coach not found or inactive"})
			return
		}

		c.Set(AuthCoachIDKey, claims.CoachID)
		c.Set(AuthCoachEmailKey, strings.ToLower(claims.Subject))
		c.Next()
	}
}

// GetCoachIDFromContext extracts the authenticated coach's ID from the context.
func GetCoachIDFromContext(c *gin.Context) (uint, error) {
	coachID, exists := c.Get(AuthCoachIDKey)
	if !exists {
		return 0, errors.New("coach ID not found in context")
	}

	id, ok := coachID.(uint)
	if !ok {
		return 0, fmt.Errorf("coach ID has unexpected type: %T", coachID)
	}

	return id, nil
}

// GetCoachEmailFromContext extracts the authenticated coach's email from the context.
func GetCoachEmailFromContext(c *gin.Context) (string, error) {
	email, exists := c.Get(AuthCoachEmailKey)
	if !exists {
		return "", errors.New("coach email not found in context")
	}
	s, ok := email.(string)
	if !ok {
		return "", fmt.Errorf("coach email has unexpected type: %T", email)
	}
	return s, nil
}
