package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aviengine/internal/catalog"
	"aviengine/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func TestAnalyzeUnknownQuestion(t *testing.T) {
	analyzer := NewResponseAnalyzer(testCatalog(t), Fixed(0))

	_, err := analyzer.Analyze("pregunta_inexistente", &model.ResponseSignal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestAnalyzeDeterministicWithCompleteSignal(t *testing.T) {
	// With pitch and energy series supplied the noise source is never
	// consulted, so two analyzers with different seeds must agree
	signal := &model.ResponseSignal{
		Transcript:   "tengo cuarenta y dos años",
		Words:        []string{"tengo", "cuarenta", "y", "dos", "años"},
		ResponseTime: 3,
		Features: model.AcousticFeatures{
			PitchSeries:  []float64{120, 128, 123, 125},
			EnergySeries: []float64{0.6, 0.62, 0.58, 0.61},
		},
	}

	first := NewResponseAnalyzer(testCatalog(t), NewNoise(1))
	second := NewResponseAnalyzer(testCatalog(t), NewNoise(99))

	a, err := first.Analyze("edad", signal)
	require.NoError(t, err)
	b, err := second.Analyze("edad", signal)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestAnalyzeScoreBounds(t *testing.T) {
	analyzer := NewResponseAnalyzer(testCatalog(t), Fixed(0.5))

	for _, q := range testCatalog(t).All() {
		result, err := analyzer.Analyze(q.ID, &model.ResponseSignal{
			Transcript:   "no se, tal vez, creo que no",
			ResponseTime: 60,
		})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.VoiceScore, 0.0)
		assert.LessOrEqual(t, result.VoiceScore, 1.0)
		assert.GreaterOrEqual(t, result.AnalysisMetrics.LatencyIndex, 0.0)
		assert.LessOrEqual(t, result.AnalysisMetrics.LatencyIndex, 1.0)
		assert.LessOrEqual(t, result.AnalysisMetrics.PitchVariability, 1.0)
	}
}

func TestDetectStressIndicators(t *testing.T) {
	analyzer := NewResponseAnalyzer(testCatalog(t), Fixed(0))

	// anos_en_ruta expects a 5 second answer
	tests := []struct {
		name         string
		signal       *model.ResponseSignal
		wantContains []string
		wantEmpty    bool
	}{
		{
			name:         "very slow answer",
			signal:       &model.ResponseSignal{ResponseTime: 12},
			wantContains: []string{model.StressVerySlow},
		},
		{
			name:         "delayed answer",
			signal:       &model.ResponseSignal{ResponseTime: 8},
			wantContains: []string{model.StressDelayed},
		},
		{
			name:         "suspiciously fast answer",
			signal:       &model.ResponseSignal{ResponseTime: 1},
			wantContains: []string{model.StressTooFast},
		},
		{
			name: "evasive phrasing matches configured pattern",
			signal: &model.ResponseSignal{
				Transcript:   "mas o menos unos diez años",
				ResponseTime: 5,
			},
			wantContains: []string{"mas_o_menos"},
		},
		{
			name:      "timely direct answer",
			signal:    &model.ResponseSignal{Transcript: "desde 2015, exactamente", ResponseTime: 5},
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := analyzer.Analyze("anos_en_ruta", tt.signal)
			require.NoError(t, err)

			if tt.wantEmpty {
				assert.Empty(t, result.StressIndicators)
				return
			}
			for _, indicator := range tt.wantContains {
				assert.Contains(t, result.StressIndicators, indicator)
			}
		})
	}
}

func TestNervousnessFromPitchSeries(t *testing.T) {
	// problemas_pagos is a stress level 5 question. A wildly dispersed pitch
	// series must trip the nervousness indicator without any noise draw.
	analyzer := NewResponseAnalyzer(testCatalog(t), Fixed(0))

	result, err := analyzer.Analyze("problemas_pagos", &model.ResponseSignal{
		Transcript:   "una vez me atrase pero lo pague",
		ResponseTime: 8,
		Features: model.AcousticFeatures{
			PitchSeries: []float64{80, 300, 90, 280, 85, 290},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, result.StressIndicators, model.StressNervousness)
}

func TestTruthKeywordsRaiseScore(t *testing.T) {
	analyzer := NewResponseAnalyzer(testCatalog(t), Fixed(0))

	evasive, err := analyzer.Analyze("anos_en_ruta", &model.ResponseSignal{
		Transcript:   "pues quien sabe",
		ResponseTime: 5,
	})
	require.NoError(t, err)

	direct, err := analyzer.Analyze("anos_en_ruta", &model.ResponseSignal{
		Transcript:   "desde 2015, exactamente nueve años",
		ResponseTime: 5,
	})
	require.NoError(t, err)

	assert.Contains(t, direct.TruthVerificationKeywords, "desde")
	assert.Contains(t, direct.TruthVerificationKeywords, "exactamente")
	assert.Greater(t, direct.VoiceScore, evasive.VoiceScore)
}

func TestRiskFlagsOnCriticalQuestion(t *testing.T) {
	// A slow, evasive answer to a critical high-stress question must fire
	// the full flag cascade
	analyzer := NewResponseAnalyzer(testCatalog(t), Fixed(0.9))

	result, err := analyzer.Analyze("problemas_pagos", &model.ResponseSignal{
		Transcript:   "nunca, prefiero no hablar de ese tema",
		ResponseTime: 20,
	})
	require.NoError(t, err)

	assert.Less(t, result.VoiceScore, 0.3)
	assert.Contains(t, result.RiskFlags, model.FlagScoreVeryLow)
	assert.Contains(t, result.RiskFlags, model.FlagScoreLow)
	assert.Contains(t, result.RiskFlags, model.FlagMultipleStress)
	assert.Contains(t, result.RiskFlags, model.FlagCriticalLowScore)
	assert.Contains(t, result.RiskFlags, model.FlagHighTension)
}

func TestAnalyzeNilSignal(t *testing.T) {
	analyzer := NewResponseAnalyzer(testCatalog(t), Fixed(0))

	result, err := analyzer.Analyze("nombre_completo", nil)
	require.NoError(t, err)

	assert.Equal(t, "nombre_completo", result.QuestionID)
	assert.Zero(t, result.ResponseTime)
	assert.Equal(t, 0.5, result.AnalysisMetrics.HonestyLexicon)
}
