package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aviengine/internal/model"
)

func TestMicroLocalUnknownQuestion(t *testing.T) {
	engine := NewMicroLocalEngine(testCatalog(t))

	_, err := engine.Analyze(&model.VoiceAnalysisResult{QuestionID: "nope"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestFirstResponseGetsNeutralCrossValidation(t *testing.T) {
	engine := NewMicroLocalEngine(testCatalog(t))

	analysis, err := engine.Analyze(&model.VoiceAnalysisResult{
		QuestionID: "edad",
		VoiceScore: 0.7,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.8, analysis.CrossValidationScore)
	assert.InDelta(t, 0.7, analysis.LocalRiskScore, 1e-9)
	assert.Equal(t, model.CategoryBasicInfo, analysis.Category)
}

func TestLocalRiskScore(t *testing.T) {
	engine := NewMicroLocalEngine(testCatalog(t))

	tests := []struct {
		name   string
		result model.VoiceAnalysisResult
		want   float64
	}{
		{
			name:   "clean answer keeps its voice score",
			result: model.VoiceAnalysisResult{QuestionID: "edad", VoiceScore: 0.7},
			want:   0.7,
		},
		{
			name: "critical question answered poorly",
			result: model.VoiceAnalysisResult{
				QuestionID: "problemas_pagos",
				VoiceScore: 0.5,
				RiskFlags:  []string{model.FlagCriticalLowScore},
			},
			// 0.5 * 0.7 critical penalty, minus one flag
			want: 0.25,
		},
		{
			name: "stressed answer to a stressful question",
			result: model.VoiceAnalysisResult{
				QuestionID:       "gastos_mordidas_cuotas",
				VoiceScore:       0.8,
				StressIndicators: []string{model.StressVerySlow, model.StressNervousness},
			},
			// stress level 5 scales the score by 0.8
			want: 0.64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := engine.Analyze(&tt.result, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, analysis.LocalRiskScore, 1e-9)
		})
	}
}

func TestCrossValidationAgainstRelatedHistory(t *testing.T) {
	engine := NewMicroLocalEngine(testCatalog(t))

	previous := []model.VoiceAnalysisResult{
		{QuestionID: "nombre_completo", VoiceScore: 0.9},
	}

	// Same category, scores 0.4 apart: 0.8 - 0.5*0.4
	analysis, err := engine.Analyze(&model.VoiceAnalysisResult{
		QuestionID: "edad",
		VoiceScore: 0.5,
	}, previous)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, analysis.CrossValidationScore, 1e-9)

	// No category or trigger overlap with the history stays neutral
	analysis, err = engine.Analyze(&model.VoiceAnalysisResult{
		QuestionID: "vueltas_por_tanque",
		VoiceScore: 0.5,
	}, previous)
	require.NoError(t, err)
	assert.Equal(t, 0.8, analysis.CrossValidationScore)
}

func TestCrossValidationNeverBelowFloor(t *testing.T) {
	engine := NewMicroLocalEngine(testCatalog(t))

	previous := []model.VoiceAnalysisResult{
		{QuestionID: "nombre_completo", VoiceScore: 1.0},
		{QuestionID: "anos_en_ruta", VoiceScore: 1.0},
	}

	analysis, err := engine.Analyze(&model.VoiceAnalysisResult{
		QuestionID: "edad",
		VoiceScore: 0.0,
	}, previous)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, analysis.CrossValidationScore, 0.2)
}

func TestCoherencyFlags(t *testing.T) {
	engine := NewMicroLocalEngine(testCatalog(t))

	steady := []model.VoiceAnalysisResult{
		{QuestionID: "nombre_completo", VoiceScore: 0.9},
		{QuestionID: "edad", VoiceScore: 0.9},
		{QuestionID: "anos_en_ruta", VoiceScore: 0.9},
	}

	tests := []struct {
		name     string
		result   model.VoiceAnalysisResult
		previous []model.VoiceAnalysisResult
		want     string
	}{
		{
			name: "drastic score change against recent trend",
			result: model.VoiceAnalysisResult{
				QuestionID: "tipo_operacion",
				VoiceScore: 0.3,
			},
			previous: steady,
			want:     model.CoherencyDrasticChange,
		},
		{
			name: "stress on a simple question",
			result: model.VoiceAnalysisResult{
				QuestionID:       "edad",
				VoiceScore:       0.7,
				StressIndicators: []string{model.StressDelayed, model.StressNervousness},
			},
			want: model.CoherencyUnexpectedStress,
		},
		{
			name: "suspicious calm on a stressful question",
			result: model.VoiceAnalysisResult{
				QuestionID: "problemas_pagos",
				VoiceScore: 0.9,
			},
			want: model.CoherencySuspiciousCalm,
		},
		{
			name: "excessive response time",
			result: model.VoiceAnalysisResult{
				QuestionID:   "edad",
				VoiceScore:   0.7,
				ResponseTime: 10,
			},
			want: model.CoherencyExcessiveTime,
		},
		{
			name: "implausibly fast response",
			result: model.VoiceAnalysisResult{
				QuestionID:   "edad",
				VoiceScore:   0.7,
				ResponseTime: 0.5,
			},
			want: model.CoherencyTooFast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := engine.Analyze(&tt.result, tt.previous)
			require.NoError(t, err)
			assert.Contains(t, analysis.CoherencyFlags, tt.want)
		})
	}
}

func TestFollowUpRecommendations(t *testing.T) {
	engine := NewMicroLocalEngine(testCatalog(t))

	analysis, err := engine.Analyze(&model.VoiceAnalysisResult{
		QuestionID:       "problemas_pagos",
		VoiceScore:       0.4,
		StressIndicators: []string{model.StressVerySlow, model.StressNervousness},
		RiskFlags:        []string{model.FlagScoreLow, model.FlagCriticalLowScore},
	}, nil)
	require.NoError(t, err)

	// Configured follow-up first, then the escalation paths
	assert.Contains(t, analysis.RecommendedFollowUp, "¿Cómo resolvió ese atraso?")
	assert.Contains(t, analysis.RecommendedFollowUp, "Profundizar en las razones de la respuesta evasiva")
	assert.Contains(t, analysis.RecommendedFollowUp, "Repetir pregunta de manera más casual")
	assert.Contains(t, analysis.RecommendedFollowUp, "Solicitar documentación de respaldo")
}
