package auth

import (
	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes wires /auth/* (public) and /api/me (protected).
func RegisterAuthRoutes(public *gin.RouterGroup, api *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	authPublic := public.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.GET("/me", authController.Me)
	}
}
