// alert/model.go
package alert

import (
	"github.com/Claudiov13/JornSports-V2/internal/models"
	"gorm.io/gorm"
)

// Severity is the fixed alert level vocabulary.
type Severity string

const (
	SeverityWarning  Severity = "WARNING"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Rule names recorded in alert payloads.
const (
	RuleOverload = "overload_150pc"
	RuleHRVDrop  = "hrv_drop_20pc"
	RuleLowHRV   = "low_hrv_score"
	RuleHighLDH  = "ldh_over_250"
)

// Alert is a derived signal for one athlete. Created unacknowledged; the only
// permitted mutation is flipping Acknowledged to true. Never deleted here.
type Alert struct {
	gorm.Model
	AthleteID    uint           `json:"athlete_id" gorm:"not null;index"`
	Level        Severity       `json:"level" gorm:"type:varchar(16);not null"`
	Metric       string         `json:"metric"`
	Message      string         `json:"message"`
	Payload      models.JSONMap `json:"payload" gorm:"type:jsonb"`
	Acknowledged bool           `json:"acknowledged" gorm:"default:false"`
}

type GenerateRequest struct {
	PlayerID   string `json:"player_id" binding:"omitempty"`   // numeric id or UID
	PlayerCode string `json:"player_code" binding:"omitempty"` // manual registration code
}

type GenerateResponse struct {
	Created int `json:"created"`
}
