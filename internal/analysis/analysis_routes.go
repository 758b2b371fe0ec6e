package analysis

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	mw "github.com/Claudiov13/JornSports-V2/internal/middleware"
)

func RegisterAnalysisRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	athleteRepo := athlete.NewAthleteRepository(db)
	summarizer := NewSummarizer(measurement.NewMeasurementRepository(db))
	generator := NewGeminiClient(appConfig.Gemini.APIURL, appConfig.Gemini.APIKey)
	controller := NewAnalysisController(athleteRepo, summarizer, generator)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authenticated.POST("/analyze", controller.Analyze)
	}
}
