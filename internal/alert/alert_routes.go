package alert

import (
	"time"

	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	mw "github.com/Claudiov13/JornSports-V2/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAlertRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAlertRepository(db)
	athleteRepo := athlete.NewAthleteRepository(db)
	measurementRepo := measurement.NewMeasurementRepository(db)
	engine := NewEngine(repo, measurementRepo, time.Duration(appConfig.Alerts.DedupeHours)*time.Hour)
	controller := NewAlertController(repo, athleteRepo, engine, appConfig)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		alerts := authenticated.Group("/alerts")
		{
			alerts.POST("/generate", controller.Generate)
			alerts.GET("", controller.List)
			alerts.POST("/:id/ack", controller.Acknowledge)
		}
		authenticated.GET("/players/:id/alerts", controller.ListForAthlete)
	}
}
