package main

import (
	"log"

	"github.com/Claudiov13/JornSports-V2/config"
	_ "github.com/Claudiov13/JornSports-V2/docs"
	"github.com/Claudiov13/JornSports-V2/internal/alert"
	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/auth"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	"github.com/Claudiov13/JornSports-V2/internal/report"
	"github.com/Claudiov13/JornSports-V2/routes"
)

// @title JornSports API
// @version 2.0
// @description Athlete performance tracking: CSV ingestion, readiness scoring, alerts, and AI reports.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.Coach{},
		&athlete.Athlete{},
		&measurement.Measurement{},
		&alert.Alert{},
		&report.Report{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
