package report

import (
	"github.com/Claudiov13/JornSports-V2/internal/models"
)

// Report is a saved snapshot of a player's dashboard: the raw data the coach
// was looking at plus whatever analysis accompanied it. Kept schemaless on
// purpose, the frontend owns the shape.
type Report struct {
	models.BaseModel
	AthleteName string         `gorm:"size:255;index" json:"athlete_name"`
	Data        models.JSONMap `gorm:"type:jsonb" json:"data"`
	Analysis    models.JSONMap `gorm:"type:jsonb" json:"analysis"`
}

func (Report) TableName() string {
	return "reports"
}

// CreateReportRequest mirrors the field names the dashboard sends.
type CreateReportRequest struct {
	AthleteName string         `json:"athleteName" binding:"required"`
	Data        models.JSONMap `json:"dados" binding:"required"`
	Analysis    models.JSONMap `json:"analysis"`
}
