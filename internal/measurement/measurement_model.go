// measurement/model.go
package measurement

import (
	"time"

	"github.com/Claudiov13/JornSports-V2/internal/models"
	"gorm.io/gorm"
)

// Measurement is a single canonical metric observation for an athlete.
// Rows are append-only: ingestion creates them and nothing mutates or
// deletes them afterwards. Duplicate (athlete, metric, recorded_at) rows
// are allowed and simply accumulate.
type Measurement struct {
	gorm.Model
	AthleteID  uint           `json:"athlete_id" gorm:"not null;index:idx_measurements_series,priority:1"`
	Metric     string         `json:"metric" gorm:"not null;index:idx_measurements_series,priority:2"`
	Value      float64        `json:"value"`
	Unit       string         `json:"unit"`
	RecordedAt time.Time      `json:"recorded_at" gorm:"not null;index:idx_measurements_series,priority:3"`
	Meta       models.JSONMap `json:"meta" gorm:"type:jsonb"`
}

// Point is one (date, value) pair in a per-metric history series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
