package athlete

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/measurement"
	"github.com/Claudiov13/JornSports-V2/internal/middleware"
	"github.com/Claudiov13/JornSports-V2/internal/models"
	"github.com/Claudiov13/JornSports-V2/pkg/responses"
	"github.com/Claudiov13/JornSports-V2/pkg/validator"
	"github.com/gin-gonic/gin"
)

const defaultHistoryDays = 28

// AthleteController handles API requests related to athletes.
type AthleteController struct {
	repo         AthleteRepository
	measurements measurement.MeasurementRepository
	config       *config.Config
}

// NewAthleteController creates a new AthleteController.
func NewAthleteController(repo AthleteRepository, measurements measurement.MeasurementRepository, cfg *config.Config) *AthleteController {
	return &AthleteController{
		repo:         repo,
		measurements: measurements,
		config:       cfg,
	}
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)
var trailingDigits = regexp.MustCompile(`(\d+)$`)

// normalizeCode reduces a club/coach name or explicit code to a 3-letter tag.
func normalizeCode(source, fallback string) string {
	cleaned := strings.ToUpper(nonAlnum.ReplaceAllString(source, ""))
	if cleaned == "" {
		cleaned = fallback
	}
	if len(cleaned) < 3 {
		cleaned = strings.ToUpper(cleaned + fallback)
	}
	return cleaned[:3]
}

// existingCodesAndMaxSeq scans the coach's athletes for manual player codes
// under the same club/coach tag and returns the taken codes plus the highest
// trailing sequence number.
func existingCodesAndMaxSeq(athletes []Athlete, clubCode, coachCode string) (map[string]bool, int) {
	existing := make(map[string]bool)
	maxSeq := 0
	for i := range athletes {
		manual := athletes[i].ManualInfo()
		if manual == nil {
			continue
		}
		if manual.GetString("club_code") != clubCode || manual.GetString("coach_code") != coachCode {
			continue
		}
		code := manual.GetString("player_code")
		if code == "" {
			continue
		}
		existing[code] = true
		if m := trailingDigits.FindStringSubmatch(code); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > maxSeq {
				maxSeq = n
			}
		}
	}
	return existing, maxSeq
}

// List godoc
// @Summary List registered athletes
// @Tags Athletes
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]ListResponse}
// @Router /api/players [get]
// @Security BearerAuth
func (ac *AthleteController) List(c *gin.Context) {
	athletes, err := ac.repo.ListAll()
	if err != nil {
		responses.InternalServerError(c, "Failed to list athletes")
		return
	}

	out := make([]ListResponse, 0, len(athletes))
	for i := range athletes {
		a := &athletes[i]
		manual := a.ManualInfo()
		out = append(out, ListResponse{
			ID:         a.ID,
			UID:        a.UID,
			FirstName:  a.FirstName,
			LastName:   a.LastName,
			PlayerCode: manual.GetString("player_code"),
			ClubName:   manual.GetString("club_name"),
			CreatedAt:  a.CreatedAt,
		})
	}
	responses.SendSuccess(c, http.StatusOK, "", out)
}

// CreateManual godoc
// @Summary Register an athlete manually with a generated player code
// @Tags Athletes
// @Accept json
// @Produce json
// @Param request body ManualCreateRequest true "Manual registration payload"
// @Success 201 {object} responses.SuccessResponse{data=ManualCreateResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /api/players/manual [post]
// @Security BearerAuth
func (ac *AthleteController) CreateManual(c *gin.Context) {
	var req ManualCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	clubName := strings.TrimSpace(req.ClubName)
	coachName := strings.TrimSpace(req.CoachName)
	if firstName == "" {
		responses.BadRequest(c, "Athlete first name is required")
		return
	}

	clubCode := normalizeCode(firstNonEmpty(req.ClubCode, clubName), "CLB")
	coachCode := normalizeCode(firstNonEmpty(req.CoachCode, coachName), "COA")

	owned, err := ac.repo.ListByOwner(coachID)
	if err != nil {
		responses.InternalServerError(c, "Failed to scan existing player codes")
		return
	}
	existing, maxSeq := existingCodesAndMaxSeq(owned, clubCode, coachCode)

	seq := maxSeq + 1
	playerCode := fmt.Sprintf("%s%s%03d", clubCode, coachCode, seq)
	for existing[playerCode] {
		seq++
		playerCode = fmt.Sprintf("%s%s%03d", clubCode, coachCode, seq)
	}

	a := Athlete{
		FirstName: firstName,
		LastName:  lastName,
		OwnerID:   &coachID,
		ExternalIDs: models.JSONMap{
			ExtKeyManual: models.JSONMap{
				"player_code": playerCode,
				"club_name":   clubName,
				"club_code":   clubCode,
				"coach_name":  coachName,
				"coach_code":  coachCode,
				"sequence":    seq,
				"created_at":  time.Now().UTC().Format(time.RFC3339),
			},
		},
	}
	if err := ac.repo.Create(&a); err != nil {
		responses.InternalServerError(c, "Failed to create athlete")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Athlete registered", ManualCreateResponse{
		ID:         a.ID,
		UID:        a.UID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		PlayerCode: playerCode,
		ClubName:   clubName,
		ClubCode:   clubCode,
		CoachName:  coachName,
		CoachCode:  coachCode,
		CreatedAt:  a.CreatedAt,
	})
}

// UpdateAssessment godoc
// @Summary Save or replace the athlete's technical/physical assessment
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete id or UID"
// @Param request body AssessmentRequest true "Assessment payload"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /api/players/{id}/assessment [put]
// @Security BearerAuth
func (ac *AthleteController) UpdateAssessment(c *gin.Context) {
	a, ok := ac.lookup(c)
	if !ok {
		return
	}

	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if a.ExternalIDs == nil {
		a.ExternalIDs = models.JSONMap{}
	}
	a.ExternalIDs[ExtKeyAssessment] = req.ToMap()
	if err := ac.repo.Save(a); err != nil {
		responses.InternalServerError(c, "Failed to save assessment")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Assessment saved", a.ExternalIDs[ExtKeyAssessment])
}

// History godoc
// @Summary Return the athlete's measurement history grouped by metric
// @Tags Athletes
// @Produce json
// @Param id path string true "Athlete id or UID"
// @Param days query int false "Trailing window in days" default(28)
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /api/players/{id}/history [get]
// @Security BearerAuth
func (ac *AthleteController) History(c *gin.Context) {
	a, ok := ac.lookup(c)
	if !ok {
		return
	}

	days := defaultHistoryDays
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			days = n
		}
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := ac.measurements.ListSince(a.ID, since)
	if err != nil {
		responses.InternalServerError(c, "Failed to load history")
		return
	}

	history := make(map[string][]measurement.Point)
	for _, m := range rows {
		history[m.Metric] = append(history[m.Metric], measurement.Point{
			Date:  m.RecordedAt,
			Value: m.Value,
		})
	}
	responses.SendSuccess(c, http.StatusOK, "", history)
}

// Measurements godoc
// @Summary Return raw measurements for one athlete+metric series
// @Tags Athletes
// @Produce json
// @Param id path string true "Athlete id or UID"
// @Param metric query string true "Canonical metric name"
// @Success 200 {object} responses.SuccessResponse{data=[]measurement.Measurement}
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /api/players/{id}/measurements [get]
// @Security BearerAuth
func (ac *AthleteController) Measurements(c *gin.Context) {
	a, ok := ac.lookup(c)
	if !ok {
		return
	}

	metric := c.Query("metric")
	if metric == "" {
		responses.BadRequest(c, "metric query parameter is required")
		return
	}

	rows, err := ac.measurements.ListByMetric(a.ID, metric)
	if err != nil {
		responses.InternalServerError(c, "Failed to load measurements")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", rows)
}

// lookup resolves the :id path param and writes the error response itself.
func (ac *AthleteController) lookup(c *gin.Context) (*Athlete, bool) {
	a, err := ac.repo.ResolveRef(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to look up athlete")
		return nil, false
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return nil, false
	}
	return a, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
