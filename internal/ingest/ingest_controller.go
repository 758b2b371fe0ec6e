package ingest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Claudiov13/JornSports-V2/internal/middleware"
	"github.com/Claudiov13/JornSports-V2/pkg/responses"
)

// IngestController exposes the CSV upload endpoints.
type IngestController struct {
	service *Service
}

func NewIngestController(service *Service) *IngestController {
	return &IngestController{service: service}
}

// UploadStrict godoc
// @Summary Ingest a CSV file with the fixed seven-column schema
// @Description Expects columns first_name, last_name, external_id, metric,
// @Description value, unit, recorded_at. Bad rows are reported, not fatal.
// @Tags Ingestion
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} StrictResult
// @Failure 400 {object} responses.ErrorResponse "Unreadable file or missing columns"
// @Router /api/ingest/csv [post]
// @Security BearerAuth
func (ic *IngestController) UploadStrict(c *gin.Context) {
	raw, coachID, ok := ic.readUpload(c)
	if !ok {
		return
	}

	result, err := ic.service.IngestStrict(raw, coachID)
	if err != nil {
		ic.sendIngestError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UploadFlexible godoc
// @Summary Ingest a CSV file with an arbitrary schema
// @Description Detects column roles from the header and accepts both
// @Description long-format (metric/value columns) and wide-format (one column
// @Description per metric) files. Unresolvable rows are skipped.
// @Tags Ingestion
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} FlexibleResult
// @Failure 400 {object} responses.ErrorResponse "Unreadable file or undetectable columns"
// @Router /api/ingest/csv/flexible [post]
// @Security BearerAuth
func (ic *IngestController) UploadFlexible(c *gin.Context) {
	raw, coachID, ok := ic.readUpload(c)
	if !ok {
		return
	}

	result, err := ic.service.IngestFlexible(raw, coachID)
	if err != nil {
		ic.sendIngestError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ic *IngestController) readUpload(c *gin.Context) ([]byte, uint, bool) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return nil, 0, false
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.BadRequest(c, "A CSV file is required in the 'file' field")
		return nil, 0, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		responses.BadRequest(c, "Failed to open uploaded file")
		return nil, 0, false
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		responses.BadRequest(c, "Failed to read uploaded file")
		return nil, 0, false
	}
	return raw, coachID, true
}

func (ic *IngestController) sendIngestError(c *gin.Context, err error) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		responses.BadRequest(c, reqErr.Detail)
		return
	}
	responses.InternalServerError(c, "Ingestion failed")
}
