package engine

import (
	"aviengine/internal/catalog"
	"aviengine/internal/model"
)

var financialQuestionIDs = []string{
	"ingresos_promedio_diarios",
	"gasto_diario_gasolina",
	"vueltas_por_dia",
	"pasajeros_por_vuelta",
	"tarifa_por_pasajero",
	"pago_semanal_tarjeta",
	"gastos_mordidas_cuotas",
}

var expenseQuestionIDs = []string{
	"gasto_diario_gasolina",
	"pago_semanal_tarjeta",
	"gastos_mordidas_cuotas",
}

var validationQuestionIDs = []string{
	"coherencia_ingresos_gastos",
	"confirmacion_datos_criticos",
	"compromisos_existentes",
	"ahorros_emergencia",
}

// SessionAggregator rebuilds the derived session view from the append-only
// result history. Given the same history it always produces the same
// session, so the stored state stays the single source of truth.
type SessionAggregator struct {
	catalog *catalog.Catalog
	micro   *MicroLocalEngine
	checker *ConsistencyChecker
	noise   Noise
}

// NewSessionAggregator creates a session aggregator
func NewSessionAggregator(cat *catalog.Catalog, micro *MicroLocalEngine, checker *ConsistencyChecker, noise Noise) *SessionAggregator {
	return &SessionAggregator{catalog: cat, micro: micro, checker: checker, noise: noise}
}

// BuildSession folds the micro-local engine over the result history in
// answer order and derives the session-wide aggregates
func (a *SessionAggregator) BuildSession(sessionID string, results []model.VoiceAnalysisResult, targetQuestions int) (*model.Session, error) {
	analyses := make([]model.MicroLocalAnalysis, 0, len(results))
	for i := range results {
		analysis, err := a.micro.Analyze(&results[i], results[:i])
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *analysis)
	}

	checks := a.checker.Check(results)

	return &model.Session{
		SessionID:                  sessionID,
		TotalQuestions:             targetQuestions,
		CompletedQuestions:         len(results),
		MicroAnalyses:              analyses,
		ConsistencyChecks:          checks,
		OverallCoherenceScore:      coherenceScore(analyses, checks),
		OverallScore:               a.weightedOverallScore(results),
		RiskAreas:                  riskAreas(analyses),
		Flags:                      consolidatedFlags(results),
		NextQuestionRecommendation: a.recommendNextQuestions(results, targetQuestions),
	}, nil
}

// coherenceScore averages local risk and cross-validation, then penalizes
// each failed consistency check
func coherenceScore(analyses []model.MicroLocalAnalysis, checks []model.ConsistencyCheck) float64 {
	if len(analyses) == 0 {
		return 1
	}

	localScores := make([]float64, 0, len(analyses))
	crossScores := make([]float64, 0, len(analyses))
	for _, a := range analyses {
		localScores = append(localScores, a.LocalRiskScore)
		crossScores = append(crossScores, a.CrossValidationScore)
	}

	score := (mean(localScores) + mean(crossScores)) / 2.0

	for _, check := range checks {
		if check.ConsistencyScore < 0.6 {
			score -= 0.1
		}
	}

	return clamp01(score)
}

// weightedOverallScore weighs each answer's voice score by its question's
// configured weight
func (a *SessionAggregator) weightedOverallScore(results []model.VoiceAnalysisResult) float64 {
	totalWeight := 0.0
	weighted := 0.0
	for _, r := range results {
		question, ok := a.catalog.Get(r.QuestionID)
		if !ok {
			continue
		}
		w := float64(question.Weight)
		weighted += r.VoiceScore * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight
}

// riskAreas lists categories whose average local risk score fell below 0.5,
// in the catalog's canonical category order
func riskAreas(analyses []model.MicroLocalAnalysis) []model.Category {
	byCategory := map[model.Category][]float64{}
	for _, a := range analyses {
		byCategory[a.Category] = append(byCategory[a.Category], a.LocalRiskScore)
	}

	areas := []model.Category{}
	for _, category := range model.Categories() {
		scores, ok := byCategory[category]
		if !ok {
			continue
		}
		if mean(scores) < 0.5 {
			areas = append(areas, category)
		}
	}
	return areas
}

func consolidatedFlags(results []model.VoiceAnalysisResult) []string {
	seen := map[string]bool{}
	flags := []string{}
	for _, r := range results {
		for _, flag := range r.RiskFlags {
			if seen[flag] {
				continue
			}
			seen[flag] = true
			flags = append(flags, flag)
		}
	}
	return flags
}

// recommendNextQuestions prioritizes unanswered critical and high-stress
// questions, then the remaining unanswered ones, truncated to what the
// session still has room for
func (a *SessionAggregator) recommendNextQuestions(results []model.VoiceAnalysisResult, targetQuestions int) []model.Question {
	answered := map[string]bool{}
	for _, r := range results {
		answered[r.QuestionID] = true
	}

	remaining := targetQuestions - len(results)
	if remaining <= 0 {
		return []model.Question{}
	}
	limit := remaining
	if limit > 10 {
		limit = 10
	}

	recommended := []model.Question{}
	picked := map[string]bool{}
	add := func(q model.Question) {
		if answered[q.ID] || picked[q.ID] {
			return
		}
		picked[q.ID] = true
		recommended = append(recommended, q)
	}

	for _, q := range a.catalog.Critical() {
		add(q)
	}
	for _, q := range a.catalog.HighStress() {
		add(q)
	}
	for _, q := range a.catalog.All() {
		add(q)
	}

	if len(recommended) > limit {
		recommended = recommended[:limit]
	}
	return recommended
}

// ValidateFinancialCoherence inspects the answered financial questions for
// declared income/expense mismatches. With fewer than three relevant
// answers there is nothing to cross, so the session is trivially coherent.
func (a *SessionAggregator) ValidateFinancialCoherence(results []model.VoiceAnalysisResult) *model.FinancialCoherence {
	answered := map[string]bool{}
	for _, r := range results {
		answered[r.QuestionID] = true
	}

	relevant := 0
	for _, id := range financialQuestionIDs {
		if answered[id] {
			relevant++
		}
	}
	if relevant < 3 {
		return &model.FinancialCoherence{
			Coherent:           true,
			Inconsistencies:    []string{},
			SuggestedQuestions: []model.Question{},
		}
	}

	// TODO: compute the declared income from vueltas_por_dia x
	// pasajeros_por_vuelta x tarifa_por_pasajero and compare it against
	// ingresos_promedio_diarios once numeric answer extraction lands.
	// Until then mismatch detection stays a simulated draw.
	inconsistencies := []string{}

	operationComplete := answered["ingresos_promedio_diarios"] &&
		answered["vueltas_por_dia"] &&
		answered["pasajeros_por_vuelta"] &&
		answered["tarifa_por_pasajero"]
	if operationComplete && a.noise.Float64() > 0.7 {
		inconsistencies = append(inconsistencies, model.FinancialIncomeMismatch)
	}

	expensesAnswered := 0
	for _, id := range expenseQuestionIDs {
		if answered[id] {
			expensesAnswered++
		}
	}
	if expensesAnswered >= 2 && answered["ingresos_promedio_diarios"] && a.noise.Float64() > 0.8 {
		inconsistencies = append(inconsistencies, model.FinancialExpensesExceed)
	}

	suggested := []model.Question{}
	if len(inconsistencies) > 0 {
		for _, id := range validationQuestionIDs {
			if answered[id] {
				continue
			}
			if q, ok := a.catalog.Get(id); ok {
				suggested = append(suggested, q)
			}
		}
	}

	return &model.FinancialCoherence{
		Coherent:           len(inconsistencies) == 0,
		Inconsistencies:    inconsistencies,
		SuggestedQuestions: suggested,
	}
}
