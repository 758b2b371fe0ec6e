package ingest

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/alert"
	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	mw "github.com/Claudiov13/JornSports-V2/internal/middleware"
)

func RegisterIngestRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	service := NewService(
		athlete.NewAthleteRepository(db),
		measurement.NewMeasurementRepository(db),
		alert.NewAlertRepository(db),
	)
	controller := NewIngestController(service)

	authenticated := router.Group("/ingest")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authenticated.POST("/csv", controller.UploadStrict)
		authenticated.POST("/csv/flexible", controller.UploadFlexible)
	}
}
