package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aviengine/internal/model"
)

func TestCheckSkipsIncompletePairs(t *testing.T) {
	checker := NewConsistencyChecker(nil)

	checks := checker.Check([]model.VoiceAnalysisResult{
		{QuestionID: "edad", VoiceScore: 0.7},
	})
	assert.Empty(t, checks)
}

func TestCheckAgreementScores(t *testing.T) {
	checker := NewConsistencyChecker(nil)

	tests := []struct {
		name      string
		first     model.VoiceAnalysisResult
		second    model.VoiceAnalysisResult
		wantScore float64
		wantFlags []string
	}{
		{
			name:      "identical scores are fully consistent",
			first:     model.VoiceAnalysisResult{QuestionID: "edad", VoiceScore: 0.7},
			second:    model.VoiceAnalysisResult{QuestionID: "anos_en_ruta", VoiceScore: 0.7},
			wantScore: 1.0,
			wantFlags: []string{},
		},
		{
			name:      "large gap is a severe inconsistency",
			first:     model.VoiceAnalysisResult{QuestionID: "edad", VoiceScore: 0.9},
			second:    model.VoiceAnalysisResult{QuestionID: "anos_en_ruta", VoiceScore: 0.1},
			wantScore: 0.36,
			wantFlags: []string{model.InconsistencySevere},
		},
		{
			name:      "moderate gap is a moderate inconsistency",
			first:     model.VoiceAnalysisResult{QuestionID: "edad", VoiceScore: 0.9},
			second:    model.VoiceAnalysisResult{QuestionID: "anos_en_ruta", VoiceScore: 0.35},
			wantScore: 0.56,
			wantFlags: []string{model.InconsistencyModerate},
		},
		{
			name: "shared stress raises the score",
			first: model.VoiceAnalysisResult{
				QuestionID:       "edad",
				VoiceScore:       0.5,
				StressIndicators: []string{model.StressDelayed, model.StressNervousness},
			},
			second: model.VoiceAnalysisResult{
				QuestionID:       "anos_en_ruta",
				VoiceScore:       0.9,
				StressIndicators: []string{model.StressDelayed, model.StressNervousness},
			},
			// 1 - 0.8*0.4 + 0.1*2 common indicators
			wantScore: 0.88,
			wantFlags: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := checker.Check([]model.VoiceAnalysisResult{tt.first, tt.second})
			require.Len(t, checks, 1)

			check := checks[0]
			assert.Equal(t, [2]string{"edad", "anos_en_ruta"}, check.QuestionPair)
			assert.InDelta(t, tt.wantScore, check.ConsistencyScore, 1e-9)
			assert.ElementsMatch(t, tt.wantFlags, check.InconsistencyFlags)
		})
	}
}

func TestCheckContradictoryStressPattern(t *testing.T) {
	checker := NewConsistencyChecker(nil)

	checks := checker.Check([]model.VoiceAnalysisResult{
		{
			QuestionID:       "creditos_anteriores",
			VoiceScore:       0.7,
			StressIndicators: []string{model.StressVerySlow, model.StressNervousness},
		},
		{QuestionID: "problemas_pagos", VoiceScore: 0.7},
	})
	require.Len(t, checks, 1)

	check := checks[0]
	assert.Contains(t, check.InconsistencyFlags, model.InconsistencyStressPattern)
	assert.Contains(t, check.SuggestedInvestigation,
		"Repetir preguntas en orden diferente para verificar consistencia")
}

func TestCheckSuggestsInvestigationOnLowScore(t *testing.T) {
	checker := NewConsistencyChecker(nil)

	checks := checker.Check([]model.VoiceAnalysisResult{
		{QuestionID: "ingresos_promedio_diarios", VoiceScore: 0.95},
		{QuestionID: "vueltas_por_dia", VoiceScore: 0.15},
	})
	require.Len(t, checks, 1)

	check := checks[0]
	assert.Less(t, check.ConsistencyScore, 0.5)
	assert.Contains(t, check.SuggestedInvestigation,
		"Investigar discrepancia entre ingresos_promedio_diarios y vueltas_por_dia")
	assert.Contains(t, check.SuggestedInvestigation,
		"Solicitar aclaración o documentación de respaldo")
}

func TestCheckCustomPairs(t *testing.T) {
	checker := NewConsistencyChecker([][2]string{{"a", "b"}})

	checks := checker.Check([]model.VoiceAnalysisResult{
		{QuestionID: "a", VoiceScore: 0.5},
		{QuestionID: "b", VoiceScore: 0.5},
		{QuestionID: "edad", VoiceScore: 0.5},
		{QuestionID: "anos_en_ruta", VoiceScore: 0.5},
	})
	require.Len(t, checks, 1)
	assert.Equal(t, [2]string{"a", "b"}, checks[0].QuestionPair)
}
