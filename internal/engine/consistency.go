package engine

import (
	"fmt"

	"aviengine/internal/model"
)

// DefaultConsistencyPairs are the question pairs whose answers must tell
// the same operational story. Both ids exist in the default catalog.
var DefaultConsistencyPairs = [][2]string{
	{"ingresos_promedio_diarios", "vueltas_por_dia"},
	{"gasto_diario_gasolina", "vueltas_por_tanque"},
	{"edad", "anos_en_ruta"},
	{"tipo_operacion", "valor_unidad_transporte"},
	{"creditos_anteriores", "problemas_pagos"},
}

// ConsistencyChecker scores configured question pairs once both members
// have been answered in a session
type ConsistencyChecker struct {
	pairs [][2]string
}

// NewConsistencyChecker creates a checker; a nil pair list falls back to
// DefaultConsistencyPairs
func NewConsistencyChecker(pairs [][2]string) *ConsistencyChecker {
	if pairs == nil {
		pairs = DefaultConsistencyPairs
	}
	return &ConsistencyChecker{pairs: pairs}
}

// Check returns one ConsistencyCheck per configured pair where both
// questions appear in the results. Pairs with a missing member are skipped.
func (c *ConsistencyChecker) Check(results []model.VoiceAnalysisResult) []model.ConsistencyCheck {
	byID := make(map[string]*model.VoiceAnalysisResult, len(results))
	for i := range results {
		byID[results[i].QuestionID] = &results[i]
	}

	checks := []model.ConsistencyCheck{}
	for _, pair := range c.pairs {
		first, ok := byID[pair[0]]
		if !ok {
			continue
		}
		second, ok := byID[pair[1]]
		if !ok {
			continue
		}
		checks = append(checks, checkPair(pair, first, second))
	}
	return checks
}

func checkPair(pair [2]string, first, second *model.VoiceAnalysisResult) model.ConsistencyCheck {
	commonStress := 0
	for _, indicator := range first.StressIndicators {
		if contains(second.StressIndicators, indicator) {
			commonStress++
		}
	}

	score := 1.0 - 0.8*abs(first.VoiceScore-second.VoiceScore) + 0.1*float64(commonStress)
	score = clamp(score, 0.2, 1)

	flags := []string{}
	if score < 0.4 {
		flags = append(flags, model.InconsistencySevere)
	} else if score < 0.6 {
		flags = append(flags, model.InconsistencyModerate)
	}

	// One answer stressed and the other calm on linked questions is its own
	// signal, independent of the score gap
	stressMismatch := (len(first.StressIndicators) >= 2) != (len(second.StressIndicators) >= 2)
	if stressMismatch {
		flags = append(flags, model.InconsistencyStressPattern)
	}

	investigation := []string{}
	if score < 0.5 {
		investigation = append(investigation,
			fmt.Sprintf("Investigar discrepancia entre %s y %s", pair[0], pair[1]),
			"Solicitar aclaración o documentación de respaldo",
		)
	}
	if stressMismatch {
		investigation = append(investigation,
			"Repetir preguntas en orden diferente para verificar consistencia",
		)
	}

	return model.ConsistencyCheck{
		QuestionPair:           pair,
		ConsistencyScore:       score,
		InconsistencyFlags:     flags,
		SuggestedInvestigation: investigation,
	}
}
