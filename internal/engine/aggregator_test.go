package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aviengine/internal/catalog"
	"aviengine/internal/model"
)

func testAggregator(t *testing.T, noise Noise) (*SessionAggregator, *catalog.Catalog) {
	t.Helper()
	cat := testCatalog(t)
	micro := NewMicroLocalEngine(cat)
	checker := NewConsistencyChecker(nil)
	return NewSessionAggregator(cat, micro, checker, noise), cat
}

func TestBuildSessionEmpty(t *testing.T) {
	aggregator, _ := testAggregator(t, Fixed(0))

	session, err := aggregator.BuildSession("avi_test", nil, 10)
	require.NoError(t, err)

	assert.Equal(t, "avi_test", session.SessionID)
	assert.Equal(t, 10, session.TotalQuestions)
	assert.Zero(t, session.CompletedQuestions)
	assert.Empty(t, session.MicroAnalyses)
	assert.Equal(t, 1.0, session.OverallCoherenceScore)
	assert.Zero(t, session.OverallScore)
	assert.Empty(t, session.RiskAreas)
}

func TestBuildSessionUnknownQuestionFails(t *testing.T) {
	aggregator, _ := testAggregator(t, Fixed(0))

	_, err := aggregator.BuildSession("avi_test", []model.VoiceAnalysisResult{
		{QuestionID: "edad", VoiceScore: 0.7},
		{QuestionID: "nope", VoiceScore: 0.7},
	}, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestBuildSessionIsDeterministic(t *testing.T) {
	results := []model.VoiceAnalysisResult{
		{QuestionID: "edad", VoiceScore: 0.7},
		{QuestionID: "anos_en_ruta", VoiceScore: 0.65},
		{QuestionID: "vueltas_por_dia", VoiceScore: 0.8},
	}

	first, _ := testAggregator(t, Fixed(0))
	second, _ := testAggregator(t, Fixed(0))

	a, err := first.BuildSession("avi_test", results, 10)
	require.NoError(t, err)
	b, err := second.BuildSession("avi_test", results, 10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuildSessionFlagsRiskAreas(t *testing.T) {
	aggregator, _ := testAggregator(t, Fixed(0))

	// Two critical business questions answered very poorly
	results := []model.VoiceAnalysisResult{
		{QuestionID: "edad", VoiceScore: 0.8},
		{QuestionID: "vueltas_por_dia", VoiceScore: 0.75},
		{
			QuestionID: "ingresos_promedio_diarios",
			VoiceScore: 0.3,
			RiskFlags:  []string{model.FlagScoreLow, model.FlagCriticalLowScore},
		},
		{
			QuestionID: "coherencia_ingresos_gastos",
			VoiceScore: 0.3,
			RiskFlags:  []string{model.FlagScoreLow, model.FlagCriticalLowScore},
		},
		{QuestionID: "seguro_unidad", VoiceScore: 0.7},
	}

	session, err := aggregator.BuildSession("avi_test", results, 15)
	require.NoError(t, err)

	assert.Equal(t, 5, session.CompletedQuestions)
	assert.Contains(t, session.RiskAreas, model.CategoryBusinessStructure)
	assert.NotContains(t, session.RiskAreas, model.CategoryBasicInfo)
	assert.Less(t, session.OverallCoherenceScore, 0.6)

	// Duplicated per-response flags show up once
	assert.Equal(t, []string{model.FlagScoreLow, model.FlagCriticalLowScore}, session.Flags)
}

func TestWeightedOverallScore(t *testing.T) {
	aggregator, _ := testAggregator(t, Fixed(0))

	// edad weighs 6, vueltas_por_dia weighs 8
	session, err := aggregator.BuildSession("avi_test", []model.VoiceAnalysisResult{
		{QuestionID: "edad", VoiceScore: 0.6},
		{QuestionID: "vueltas_por_dia", VoiceScore: 0.9},
	}, 10)
	require.NoError(t, err)

	assert.InDelta(t, (0.6*6+0.9*8)/14, session.OverallScore, 1e-9)
}

func TestRecommendationsPrioritizeCriticalQuestions(t *testing.T) {
	aggregator, cat := testAggregator(t, Fixed(0))

	results := []model.VoiceAnalysisResult{
		{QuestionID: "problemas_pagos", VoiceScore: 0.7},
		{QuestionID: "edad", VoiceScore: 0.7},
	}

	session, err := aggregator.BuildSession("avi_test", results, 10)
	require.NoError(t, err)

	recommended := session.NextQuestionRecommendation
	require.NotEmpty(t, recommended)
	assert.LessOrEqual(t, len(recommended), 8)

	// Answered questions never come back
	for _, q := range recommended {
		assert.NotEqual(t, "problemas_pagos", q.ID)
		assert.NotEqual(t, "edad", q.ID)
	}

	// Unanswered critical questions lead the list
	criticalRemaining := 0
	for _, q := range cat.Critical() {
		if q.ID != "problemas_pagos" {
			criticalRemaining++
		}
	}
	for i := 0; i < criticalRemaining && i < len(recommended); i++ {
		assert.True(t, recommended[i].IsCritical(), "position %d should be critical", i)
	}
}

func TestRecommendationsRespectRemainingBudget(t *testing.T) {
	aggregator, _ := testAggregator(t, Fixed(0))

	results := []model.VoiceAnalysisResult{
		{QuestionID: "edad", VoiceScore: 0.7},
		{QuestionID: "anos_en_ruta", VoiceScore: 0.7},
	}

	session, err := aggregator.BuildSession("avi_test", results, 3)
	require.NoError(t, err)
	assert.Len(t, session.NextQuestionRecommendation, 1)

	session, err = aggregator.BuildSession("avi_test", results, 2)
	require.NoError(t, err)
	assert.Empty(t, session.NextQuestionRecommendation)

	session, err = aggregator.BuildSession("avi_test", results, 24)
	require.NoError(t, err)
	assert.Len(t, session.NextQuestionRecommendation, 10)
}

func TestFinancialCoherenceNeedsEnoughData(t *testing.T) {
	aggregator, _ := testAggregator(t, Fixed(0.99))

	coherence := aggregator.ValidateFinancialCoherence([]model.VoiceAnalysisResult{
		{QuestionID: "ingresos_promedio_diarios", VoiceScore: 0.5},
		{QuestionID: "gasto_diario_gasolina", VoiceScore: 0.5},
	})

	assert.True(t, coherence.Coherent)
	assert.Empty(t, coherence.Inconsistencies)
	assert.Empty(t, coherence.SuggestedQuestions)
}

func TestFinancialCoherenceDetectsMismatches(t *testing.T) {
	results := []model.VoiceAnalysisResult{
		{QuestionID: "ingresos_promedio_diarios", VoiceScore: 0.5},
		{QuestionID: "vueltas_por_dia", VoiceScore: 0.5},
		{QuestionID: "pasajeros_por_vuelta", VoiceScore: 0.5},
		{QuestionID: "tarifa_por_pasajero", VoiceScore: 0.5},
		{QuestionID: "gasto_diario_gasolina", VoiceScore: 0.5},
		{QuestionID: "pago_semanal_tarjeta", VoiceScore: 0.5},
	}

	aggregator, _ := testAggregator(t, Fixed(0.99))
	coherence := aggregator.ValidateFinancialCoherence(results)

	assert.False(t, coherence.Coherent)
	assert.Contains(t, coherence.Inconsistencies, model.FinancialIncomeMismatch)
	assert.Contains(t, coherence.Inconsistencies, model.FinancialExpensesExceed)

	suggested := make([]string, 0, len(coherence.SuggestedQuestions))
	for _, q := range coherence.SuggestedQuestions {
		suggested = append(suggested, q.ID)
	}
	assert.Contains(t, suggested, "coherencia_ingresos_gastos")
	assert.Contains(t, suggested, "ahorros_emergencia")

	// Same data with a quiet draw reports coherent
	aggregator, _ = testAggregator(t, Fixed(0.1))
	coherence = aggregator.ValidateFinancialCoherence(results)
	assert.True(t, coherence.Coherent)
	assert.Empty(t, coherence.Inconsistencies)
}
