package report

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/pkg/responses"
	"github.com/Claudiov13/JornSports-V2/pkg/validator"
)

// ReportController handles saved dashboard reports.
type ReportController struct {
	repo     ReportRepository
	athletes athlete.AthleteRepository
}

func NewReportController(repo ReportRepository, athletes athlete.AthleteRepository) *ReportController {
	return &ReportController{repo: repo, athletes: athletes}
}

// Create godoc
// @Summary Save a dashboard report snapshot
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report payload"
// @Success 201 {object} responses.SuccessResponse{data=Report}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /api/reports [post]
// @Security BearerAuth
func (rc *ReportController) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	report := &Report{
		AthleteName: strings.TrimSpace(req.AthleteName),
		Data:        req.Data,
		Analysis:    req.Analysis,
	}
	if err := rc.repo.Create(report); err != nil {
		responses.InternalServerError(c, "Failed to save report")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Report saved", report)
}

// List godoc
// @Summary List saved reports, newest first
// @Tags Reports
// @Produce json
// @Param athlete query string false "Filter by athlete name (case-insensitive)"
// @Success 200 {object} responses.SuccessResponse{data=[]Report}
// @Router /api/reports [get]
// @Security BearerAuth
func (rc *ReportController) List(c *gin.Context) {
	reports, err := rc.repo.List(c.Query("athlete"))
	if err != nil {
		responses.InternalServerError(c, "Failed to list reports")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", reports)
}

// ListForAthlete godoc
// @Summary List saved reports for one athlete
// @Tags Reports
// @Produce json
// @Param id path string true "Athlete id or UID"
// @Success 200 {object} responses.SuccessResponse{data=[]Report}
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /api/players/{id}/reports [get]
// @Security BearerAuth
func (rc *ReportController) ListForAthlete(c *gin.Context) {
	a, err := rc.athletes.ResolveRef(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to look up athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	reports, err := rc.repo.List(a.FirstName + " " + a.LastName)
	if err != nil {
		responses.InternalServerError(c, "Failed to list reports")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", reports)
}

// Delete godoc
// @Summary Delete a saved report
// @Tags Reports
// @Produce json
// @Param id path int true "Report id"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Report not found"
// @Router /api/reports/{id} [delete]
// @Security BearerAuth
func (rc *ReportController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid report id")
		return
	}

	deleted, err := rc.repo.Delete(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to delete report")
		return
	}
	if !deleted {
		responses.NotFound(c, "Report")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Report deleted", nil)
}
