package analysis

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Claudiov13/JornSports-V2/internal/athlete"
	"github.com/Claudiov13/JornSports-V2/pkg/responses"
	"github.com/Claudiov13/JornSports-V2/pkg/validator"
)

// narrativeKeys are the HTML sections the dashboard renders; they are the
// only LLM-authored fields and the only ones that get sanitized.
var narrativeKeys = []string{"relatorio", "comparacao", "plano_treino"}

type AnalyzeRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// AnalysisController generates the holistic athlete report: stored
// assessment plus recent physiology, narrated by the LLM.
type AnalysisController struct {
	athletes   athlete.AthleteRepository
	summarizer *Summarizer
	generator  Generator
}

func NewAnalysisController(athletes athlete.AthleteRepository, summarizer *Summarizer, generator Generator) *AnalysisController {
	return &AnalysisController{
		athletes:   athletes,
		summarizer: summarizer,
		generator:  generator,
	}
}

// Analyze godoc
// @Summary Generate an AI narrative report for an athlete
// @Description Combines the stored technical assessment with the last 28
// @Description days of measurements. Falls back to a locally generated
// @Description report when the LLM is unavailable; never fails on LLM errors.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Target athlete"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} responses.ErrorResponse "Athlete has no assessment"
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /api/analyze [post]
// @Security BearerAuth
func (ac *AnalysisController) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	a, err := ac.athletes.ResolveRef(req.PlayerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	assessment := a.Assessment()
	if assessment == nil {
		responses.BadRequest(c, "Athlete has no technical assessment yet. Fill in the profile first.")
		return
	}

	summary, systemAlerts, err := ac.summarizer.MetricsSummary(a.ID, time.Now().UTC())
	if err != nil {
		responses.InternalServerError(c, "Failed to summarize measurements")
		return
	}
	evaluation := Evaluate(assessment)

	prompt := buildPrompt(a, assessment, summary, systemAlerts, evaluation)
	text, err := ac.generator.Generate(c.Request.Context(), prompt)
	if err != nil {
		log.Printf("analysis: generation failed for athlete %d: %v", a.ID, err)
		c.JSON(http.StatusOK, fallbackResponse(systemAlerts, evaluation))
		return
	}

	result, err := ExtractJSON(text)
	if err != nil {
		log.Printf("analysis: unparseable model output for athlete %d: %v", a.ID, err)
		c.JSON(http.StatusOK, fallbackResponse(systemAlerts, evaluation))
		return
	}

	for _, key := range narrativeKeys {
		if raw, ok := result[key].(string); ok {
			result[key] = SanitizeHTML(raw)
		}
	}
	result["evaluation"] = evaluation
	result["system_alerts"] = systemAlerts
	c.JSON(http.StatusOK, result)
}

func buildPrompt(a *athlete.Athlete, assessment map[string]interface{}, summary, systemAlerts string, evaluation *Evaluation) string {
	skills := make(map[string]interface{})
	for k, v := range assessment {
		if _, isNum := v.(float64); isNum && k != "altura" && k != "peso" {
			skills[k] = v
		}
	}
	skillsJSON, _ := json.Marshal(skills)

	var b strings.Builder
	b.WriteString("You are an elite performance physiologist and analyst. Analyze this athlete HOLISTICALLY.\n")
	b.WriteString("Combine the scouting assessment with the REAL physiological data (GPS/HRV) to reach a verdict.\n\n")
	fmt.Fprintf(&b, "ATHLETE:\n- Name: %s %s\n- Position: %v\n- Body: %vcm, %vkg\n- Skills: %s\n\n",
		a.FirstName, a.LastName, assessment["posicao"], assessment["altura"], assessment["peso"], skillsJSON)
	fmt.Fprintf(&b, "PHYSIOLOGICAL METRICS (last 28 days):\n%s\n\n", summary)
	fmt.Fprintf(&b, "SYSTEM ALERTS (rule-based):\n%s\n", systemAlerts)
	b.WriteString("(If there are HRV or ACWR alerts, weigh them heavily in the report.)\n\n")
	fmt.Fprintf(&b, "SYSTEM EVALUATION:\n- Potential: %.1f/100\n- Structural injury risk: %s\n\n",
		evaluation.PotentialScore, evaluation.InjuryRiskLabel)
	b.WriteString(`EXPECTED OUTPUT (a single JSON object):
{
  "relatorio": "<p>Short HTML. Start with the current physical state (fatigue/recovery) based on the alerts, then the technical side. Be direct.</p>",
  "comparacao": "<p>Short HTML. A professional player with a similar style.</p>",
  "plano_treino": "<ul><li>Focus 1 (current injury/fatigue risk)</li><li>Focus 2 (technical)</li><li>Focus 3 (tactical)</li><li>Focus 4 (mental)</li></ul>"
}`)
	return b.String()
}

// fallbackResponse keeps the endpoint useful when the LLM is down: the
// rule-based alerts and the local evaluation still go out.
func fallbackResponse(systemAlerts string, evaluation *Evaluation) gin.H {
	alerts := systemAlerts
	if alerts == "" {
		alerts = "None"
	}
	return gin.H{
		"relatorio": fmt.Sprintf(
			"<p>The AI analysis is unavailable right now. <br><strong>Detected alerts:</strong><br>%s</p>", alerts),
		"comparacao":   "<p>Unavailable.</p>",
		"plano_treino": "<ul><li>Monitor training load</li><li>Maintain hydration</li></ul>",
		"evaluation":   evaluation,
	}
}
