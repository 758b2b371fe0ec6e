package athlete

import (
	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	mw "github.com/Claudiov13/JornSports-V2/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAthleteRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAthleteRepository(db)
	measurementRepo := measurement.NewMeasurementRepository(db)
	controller := NewAthleteController(repo, measurementRepo, appConfig)

	players := router.Group("/players")
	players.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		players.GET("", controller.List)
		players.POST("/manual", controller.CreateManual)
		players.PUT("/:id/assessment", controller.UpdateAssessment)
		players.GET("/:id/history", controller.History)
		players.GET("/:id/measurements", controller.Measurements)
	}
}
