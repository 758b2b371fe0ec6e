// athlete/model.go
package athlete

import (
	"time"

	"github.com/Claudiov13/JornSports-V2/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// External-identifier map keys.
const (
	ExtKeyProSoccer  = "prosoccer"  // provider id from GPS exports
	ExtKeyManual     = "manual"     // sub-object written by manual registration
	ExtKeyAssessment = "assessment" // sub-object written by the assessment endpoint
)

// Athlete is the root entity that measurements and alerts reference.
// Ownership by a coach is an optional foreign key claimed first-write-wins;
// legacy rows imported before a coach uploaded for them stay unowned.
type Athlete struct {
	gorm.Model
	UID         uuid.UUID      `json:"uid" gorm:"type:uuid;uniqueIndex"`
	FirstName   string         `json:"first_name" gorm:"index:idx_athletes_name,priority:1"`
	LastName    string         `json:"last_name" gorm:"index:idx_athletes_name,priority:2"`
	OwnerID     *uint          `json:"owner_id" gorm:"index"`
	ExternalIDs models.JSONMap `json:"external_ids" gorm:"type:jsonb"`
}

func (a *Athlete) BeforeCreate(tx *gorm.DB) error {
	if a.UID == uuid.Nil {
		a.UID = uuid.New()
	}
	if a.ExternalIDs == nil {
		a.ExternalIDs = models.JSONMap{}
	}
	return nil
}

// ManualInfo reads the manual-registration sub-object, nil when absent.
func (a *Athlete) ManualInfo() models.JSONMap {
	return a.ExternalIDs.SubMap(ExtKeyManual)
}

// Assessment reads the stored technical/physical assessment, nil when absent.
func (a *Athlete) Assessment() models.JSONMap {
	return a.ExternalIDs.SubMap(ExtKeyAssessment)
}

// --- DTOs ---

type ManualCreateRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=60"`
	LastName  string `json:"last_name" binding:"omitempty,max=80"`
	ClubName  string `json:"club_name" binding:"required,min=2,max=120"`
	CoachName string `json:"coach_name" binding:"required,min=2,max=120"`
	ClubCode  string `json:"club_code" binding:"omitempty,max=10"`
	CoachCode string `json:"coach_code" binding:"omitempty,max=10"`
}

type ManualCreateResponse struct {
	ID         uint      `json:"id"`
	UID        uuid.UUID `json:"uid"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	PlayerCode string    `json:"player_code"`
	ClubName   string    `json:"club_name"`
	ClubCode   string    `json:"club_code"`
	CoachName  string    `json:"coach_name"`
	CoachCode  string    `json:"coach_code"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListResponse struct {
	ID         uint      `json:"id"`
	UID        uuid.UUID `json:"uid"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	PlayerCode string    `json:"player_code,omitempty"`
	ClubName   string    `json:"club_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AssessmentRequest mirrors the scouting form: physical data plus 0-10 skills.
// Field names are the vocabulary the club staff record in (kept as-is so
// stored assessments and the evaluation weights stay aligned).
type AssessmentRequest struct {
	Altura      int     `json:"altura" binding:"required,gt=100,lt=230"`
	Peso        float64 `json:"peso" binding:"required,gt=20,lt=150"`
	Posicao     string  `json:"posicao" binding:"required"`
	PeDominante string  `json:"pe_dominante" binding:"required"`

	ControleBola  *int `json:"controle_bola" binding:"required,min=0,max=10"`
	Drible        *int `json:"drible" binding:"required,min=0,max=10"`
	PasseCurto    *int `json:"passe_curto" binding:"required,min=0,max=10"`
	PasseLongo    *int `json:"passe_longo" binding:"required,min=0,max=10"`
	Finalizacao   *int `json:"finalizacao" binding:"required,min=0,max=10"`
	Cabeceio      *int `json:"cabeceio" binding:"required,min=0,max=10"`
	Desarme       *int `json:"desarme" binding:"required,min=0,max=10"`
	VisaoJogo     *int `json:"visao_jogo" binding:"required,min=0,max=10"`
	Compostura    *int `json:"compostura" binding:"required,min=0,max=10"`
	Agressividade *int `json:"agressividade" binding:"required,min=0,max=10"`
}

// ToMap flattens the request into the stored assessment object.
func (r AssessmentRequest) ToMap() models.JSONMap {
	return models.JSONMap{
		"altura":        r.Altura,
		"peso":          r.Peso,
		"posicao":       r.Posicao,
		"pe_dominante":  r.PeDominante,
		"controle_bola": *r.ControleBola,
		"drible":        *r.Drible,
		"passe_curto":   *r.PasseCurto,
		"passe_longo":   *r.PasseLongo,
		"finalizacao":   *r.Finalizacao,
		"cabeceio":      *r.Cabeceio,
		"desarme":       *r.Desarme,
		"visao_jogo":    *r.VisaoJogo,
		"compostura":    *r.Compostura,
		"agressividade": *r.Agressividade,
	}
}
