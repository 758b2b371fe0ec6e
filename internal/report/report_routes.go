package report

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	mw "github.com/Claudiov13/JornSports-V2/internal/middleware"
)

func RegisterReportRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewReportRepository(db)
	athleteRepo := athlete.NewAthleteRepository(db)
	controller := NewReportController(repo, athleteRepo)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		reports := authenticated.Group("/reports")
		{
			reports.POST("", controller.Create)
			reports.GET("", controller.List)
			reports.DELETE("/:id", controller.Delete)
		}
		authenticated.GET("/players/:id/reports", controller.ListForAthlete)
	}
}
