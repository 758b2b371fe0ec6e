package alert

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/internal/middleware"
	"github.com/Claudiov13/JornSports-V2/pkg/responses"
	"github.com/Claudiov13/JornSports-V2/pkg/validator"
	"github.com/gin-gonic/gin"
)

// AlertController handles alert generation, listing, and acknowledgement.
type AlertController struct {
	repo     AlertRepository
	athletes athlete.AthleteRepository
	engine   *Engine
	config   *config.Config
}

func NewAlertController(repo AlertRepository, athletes athlete.AthleteRepository, engine *Engine, cfg *config.Config) *AlertController {
	return &AlertController{
		repo:     repo,
		athletes: athletes,
		engine:   engine,
		config:   cfg,
	}
}

// Generate godoc
// @Summary Run the longitudinal alert rules
// @Description Evaluates the overload and HRV-drop rules for one athlete, or
// @Description for every athlete with measurements owned by the caller.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body GenerateRequest false "Optional target athlete"
// @Success 200 {object} GenerateResponse
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /api/alerts/generate [post]
// @Security BearerAuth
func (ac *AlertController) Generate(c *gin.Context) {
	var req GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
			return
		}
	}

	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	targets, ok := ac.resolveTargets(c, req, coachID)
	if !ok {
		return
	}

	created, err := ac.engine.Run(targets, time.Now().UTC())
	if err != nil {
		responses.InternalServerError(c, "Alert generation failed")
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{Created: created})
}

func (ac *AlertController) resolveTargets(c *gin.Context, req GenerateRequest, coachID uint) ([]athlete.Athlete, bool) {
	switch {
	case req.PlayerID != "":
		a, err := ac.athletes.ResolveRef(req.PlayerID)
		if err != nil {
			responses.InternalServerError(c, "Failed to look up athlete")
			return nil, false
		}
		if a == nil {
			responses.NotFound(c, "Athlete")
			return nil, false
		}
		return []athlete.Athlete{*a}, true
	case req.PlayerCode != "":
		a, err := ac.athletes.FindByPlayerCode(req.PlayerCode)
		if err != nil {
			responses.InternalServerError(c, "Failed to look up athlete")
			return nil, false
		}
		if a == nil {
			responses.NotFound(c, "Athlete")
			return nil, false
		}
		return []athlete.Athlete{*a}, true
	default:
		targets, err := ac.athletes.ListOwnedWithMeasurements(coachID)
		if err != nil {
			responses.InternalServerError(c, "Failed to list athletes")
			return nil, false
		}
		return targets, true
	}
}

// List godoc
// @Summary List stored alerts, newest first
// @Tags Alerts
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Alert}
// @Router /api/alerts [get]
// @Security BearerAuth
func (ac *AlertController) List(c *gin.Context) {
	alerts, err := ac.repo.ListAll()
	if err != nil {
		responses.InternalServerError(c, "Failed to list alerts")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", alerts)
}

// ListForAthlete godoc
// @Summary List one athlete's alerts, newest first
// @Tags Alerts
// @Produce json
// @Param id path string true "Athlete id or UID"
// @Success 200 {object} responses.SuccessResponse{data=[]Alert}
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /api/players/{id}/alerts [get]
// @Security BearerAuth
func (ac *AlertController) ListForAthlete(c *gin.Context) {
	a, err := ac.athletes.ResolveRef(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to look up athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	alerts, err := ac.repo.ListByAthlete(a.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to list alerts")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", alerts)
}

// Acknowledge godoc
// @Summary Mark an alert as acknowledged
// @Tags Alerts
// @Produce json
// @Param id path int true "Alert id"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Alert not found"
// @Router /api/alerts/{id}/ack [post]
// @Security BearerAuth
func (ac *AlertController) Acknowledge(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid alert id")
		return
	}

	updated, err := ac.repo.Acknowledge(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to acknowledge alert")
		return
	}
	if !updated {
		responses.NotFound(c, "Alert")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Alert acknowledged", nil)
}
