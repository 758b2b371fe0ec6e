package analysis

import (
	"math"

	"github.com/Claudiov13/JornSports-V2/internal/models"
)

// Evaluation is the system's own verdict on an athlete, computed from the
// stored assessment without any LLM involvement. It always accompanies the
// narrative response, including the fallback.
type Evaluation struct {
	BestPosition    string             `json:"best_position"`
	PositionScores  map[string]float64 `json:"position_scores"`
	PotentialScore  float64            `json:"potential_score"`
	InjuryRiskScore int                `json:"injury_risk_score"`
	InjuryRiskLabel string             `json:"injury_risk_label"`
	BMI             *float64           `json:"bmi"`
	Notes           []string           `json:"notes"`
}

var skillKeys = []string{
	"controle_bola", "drible", "passe_curto", "passe_longo", "finalizacao",
	"cabeceio", "desarme", "visao_jogo", "compostura", "agressividade",
}

// positionOrder fixes iteration order so tie-breaking on best position is
// deterministic.
var positionOrder = []string{"goleiro", "zagueiro", "lateral", "volante", "meia", "ponta", "atacante"}

var positionWeights = map[string]map[string]float64{
	"goleiro":  {"compostura": 0.30, "salto": 0.25, "visao_jogo": 0.20, "passe_curto": 0.15, "passe_longo": 0.10},
	"zagueiro": {"desarme": 0.25, "cabeceio": 0.20, "compostura": 0.15, "passe_curto": 0.10, "agressividade": 0.15, "salto": 0.15},
	"lateral":  {"velocidade": 0.25, "drible": 0.15, "passe_longo": 0.10, "desarme": 0.15, "resistencia": 0.20, "agilidade": 0.15},
	"volante":  {"desarme": 0.20, "passe_curto": 0.20, "compostura": 0.15, "visao_jogo": 0.20, "agressividade": 0.10, "resistencia": 0.15},
	"meia":     {"visao_jogo": 0.25, "passe_curto": 0.20, "drible": 0.15, "finalizacao": 0.15, "compostura": 0.15, "passe_longo": 0.10},
	"ponta":    {"velocidade": 0.30, "drible": 0.25, "finalizacao": 0.20, "agilidade": 0.15, "passe_curto": 0.10},
	"atacante": {"finalizacao": 0.35, "cabeceio": 0.15, "compostura": 0.15, "visao_jogo": 0.10, "agressividade": 0.15, "controle_bola": 0.10},
}

// Evaluate scores an assessment: weighted position fit, overall potential,
// and a structural injury-risk estimate from BMI, agility, and aggression.
// Missing skill fields default to a neutral 5/10.
func Evaluate(assessment models.JSONMap) *Evaluation {
	speed := scaleTo10(numField(assessment, "velocidade_sprint"), 2.8, 4.5, true)
	agility := scaleTo10(numField(assessment, "agilidade"), 9.0, 12.5, true)
	jump := scaleTo10(numField(assessment, "salto_vertical"), 75.0, 30.0, false)
	endurance := 5.0

	skill := func(key string) float64 {
		if v := numField(assessment, key); v != nil {
			return *v
		}
		return 5.0
	}

	var bmi *float64
	if peso, altura := numField(assessment, "peso"), numField(assessment, "altura"); peso != nil && altura != nil && *altura > 0 {
		v := *peso / math.Pow(*altura/100.0, 2)
		bmi = &v
	}

	feats := make(map[string]float64, len(skillKeys)+4)
	for _, key := range skillKeys {
		feats[key] = skill(key)
	}
	feats["velocidade"] = speed
	feats["agilidade"] = agility
	feats["salto"] = jump
	feats["resistencia"] = endurance

	posScores := make(map[string]float64, len(positionOrder))
	bestPosition := "N/A"
	bestScore := math.Inf(-1)
	for _, pos := range positionOrder {
		weights := positionWeights[pos]
		var weighted, totalWeight float64
		for feat, w := range weights {
			val, ok := feats[feat]
			if !ok {
				val = 5.0
			}
			weighted += w * val
			totalWeight += w
		}
		score := 0.0
		if totalWeight > 0 {
			score = round1(weighted / totalWeight * 10)
		}
		posScores[pos] = score
		if score > bestScore {
			bestScore = score
			bestPosition = pos
		}
	}

	var techSum float64
	for _, key := range skillKeys {
		techSum += feats[key]
	}
	techAvg := techSum / float64(len(skillKeys))
	physAvg := (speed + agility + jump + endurance) / 4.0
	potential := round1((0.6*techAvg + 0.4*physAvg) * 10)

	risk := 0.0
	notes := []string{}
	if bmi != nil && *bmi > 25 {
		risk += (*bmi - 25) * 1.5
		if *bmi >= 27.5 {
			notes = append(notes, "Elevated BMI, may impact agility and endurance.")
		}
	}
	risk += (10.0-agility)*0.4 + skill("agressividade")*0.3
	injuryScore := int(math.Round(clamp01(risk/10.0) * 100.0))
	label := "baixo"
	switch {
	case injuryScore >= 67:
		label = "alto"
	case injuryScore >= 34:
		label = "médio"
	}

	if bmi != nil {
		rounded := round1(*bmi)
		bmi = &rounded
	}
	return &Evaluation{
		BestPosition:    bestPosition,
		PositionScores:  posScores,
		PotentialScore:  potential,
		InjuryRiskScore: injuryScore,
		InjuryRiskLabel: label,
		BMI:             bmi,
		Notes:           notes,
	}
}

// scaleTo10 maps a raw measurement onto 0..10 given the interval's best and
// worst ends. invert flags metrics where lower raw values are better (sprint
// times). A missing value lands on the neutral 5.
func scaleTo10(x *float64, best, worst float64, invert bool) float64 {
	if x == nil {
		return 5.0
	}
	a, b := best, worst
	if invert {
		a, b = worst, best
	}
	if a == b {
		return 5.0
	}
	t := (*x - a) / (b - a)
	if invert {
		t = 1.0 - t
	}
	return 10.0 * clamp01(t)
}

func clamp01(x float64) float64 {
	return math.Max(0.0, math.Min(1.0, x))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func numField(m models.JSONMap, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}
