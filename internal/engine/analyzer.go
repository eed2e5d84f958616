package engine

import (
	"strings"

	"aviengine/internal/catalog"
	"aviengine/internal/model"
)

// Evasive phrases that lower the honesty-lexicon score regardless of the
// question being asked
var evasiveWords = []string{"no_se", "tal_vez", "creo_que", "posiblemente", "quizas"}

// ResponseAnalyzer turns one answered question's raw signal into a
// VoiceAnalysisResult. Given a complete signal (series supplied) the
// analyzer is fully deterministic; the noise source only fills in when the
// external layer omitted acoustic features.
type ResponseAnalyzer struct {
	catalog *catalog.Catalog
	noise   Noise
}

// NewResponseAnalyzer creates a response analyzer bound to a catalog
func NewResponseAnalyzer(cat *catalog.Catalog, noise Noise) *ResponseAnalyzer {
	return &ResponseAnalyzer{catalog: cat, noise: noise}
}

// Analyze scores one response against its question's configuration
func (a *ResponseAnalyzer) Analyze(questionID string, signal *model.ResponseSignal) (*model.VoiceAnalysisResult, error) {
	question, ok := a.catalog.Get(questionID)
	if !ok {
		return nil, questionNotFound(questionID)
	}
	if signal == nil {
		signal = &model.ResponseSignal{}
	}

	metrics := a.computeMetrics(&question, signal)
	stressIndicators := a.detectStressIndicators(&question, signal, metrics)
	truthKeywords := findTruthKeywords(&question, signal.Transcript)
	voiceScore := computeVoiceScore(&question, metrics, stressIndicators, truthKeywords)
	riskFlags := deriveRiskFlags(&question, voiceScore, stressIndicators)

	return &model.VoiceAnalysisResult{
		QuestionID:                questionID,
		VoiceScore:                voiceScore,
		StressIndicators:          stressIndicators,
		TruthVerificationKeywords: truthKeywords,
		RiskFlags:                 riskFlags,
		ResponseTime:              signal.ResponseTime,
		AnalysisMetrics:           metrics,
	}, nil
}

func (a *ResponseAnalyzer) computeMetrics(q *model.Question, signal *model.ResponseSignal) model.AnalysisMetrics {
	expected := q.Analytics.ExpectedResponseTime

	latency := 0.0
	if signal.ResponseTime > 0 && signal.ResponseTime > expected {
		// Excess over expectation, normalized over a 5 second window
		latency = clamp01((signal.ResponseTime - expected) / 5.0)
	}

	// Higher configured stress biases variability up; the supplied pitch
	// series refines it, a noise draw stands in when the series is missing
	pitchVar := float64(q.StressLevel) * 0.1
	if len(signal.Features.PitchSeries) >= 2 {
		pitchVar += 0.3 * spread(signal.Features.PitchSeries)
	} else {
		pitchVar += 0.3 * a.noise.Float64()
	}

	energyStab := 1.0 - float64(q.StressLevel)*0.15
	if len(signal.Features.EnergySeries) >= 2 {
		energyStab -= 0.5 * spread(signal.Features.EnergySeries)
	}
	energyStab = clamp(energyStab, 0.2, 1)

	disfluency := 0.0
	if len(signal.Words) > 0 {
		disfluency = 0.2 * clamp01(float64(signal.Features.DisfluencyCount)/float64(len(signal.Words)))
	} else if signal.Features.DisfluencyCount > 0 {
		disfluency = 0.2 * a.noise.Float64()
	}
	if q.Weight >= 8 {
		disfluency += 0.1
	}

	return model.AnalysisMetrics{
		LatencyIndex:     clamp01(latency),
		PitchVariability: clamp01(pitchVar),
		EnergyStability:  energyStab,
		DisfluencyRate:   clamp01(disfluency),
		HonestyLexicon:   honestyScore(q, signal.Transcript),
	}
}

// honestyScore starts at a neutral baseline, rewards truth-verification
// keyword matches and punishes evasive language
func honestyScore(q *model.Question, transcript string) float64 {
	if transcript == "" {
		return 0.5
	}
	lower := strings.ToLower(transcript)

	score := 0.7
	for _, keyword := range q.Analytics.TruthVerificationKeywords {
		if strings.Contains(lower, asPhrase(keyword)) {
			score += 0.1
		}
	}
	for _, word := range evasiveWords {
		if strings.Contains(lower, asPhrase(word)) {
			score -= 0.1
		}
	}
	return clamp01(score)
}

func (a *ResponseAnalyzer) detectStressIndicators(q *model.Question, signal *model.ResponseSignal, metrics model.AnalysisMetrics) []string {
	indicators := []string{}
	expected := q.Analytics.ExpectedResponseTime

	if signal.ResponseTime > 0 && expected > 0 {
		switch {
		case signal.ResponseTime > expected*2:
			indicators = append(indicators, model.StressVerySlow)
		case signal.ResponseTime > expected*1.5:
			indicators = append(indicators, model.StressDelayed)
		case signal.ResponseTime < expected*0.3:
			indicators = append(indicators, model.StressTooFast)
		}
	}

	if signal.Transcript != "" {
		lower := strings.ToLower(signal.Transcript)
		for _, pattern := range q.Analytics.StressIndicatorPatterns {
			if strings.Contains(lower, asPhrase(pattern)) {
				indicators = append(indicators, pattern)
			}
		}
	}

	// Nervousness on stressful questions: read off the pitch dispersion
	// when a series was supplied, simulated draw otherwise
	if q.StressLevel >= 4 {
		if len(signal.Features.PitchSeries) >= 2 {
			if metrics.PitchVariability > 0.6 {
				indicators = append(indicators, model.StressNervousness)
			}
		} else if a.noise.Float64() > 0.6 {
			indicators = append(indicators, model.StressNervousness)
		}
	}

	return indicators
}

func findTruthKeywords(q *model.Question, transcript string) []string {
	matched := []string{}
	if transcript == "" {
		return matched
	}
	lower := strings.ToLower(transcript)
	for _, keyword := range q.Analytics.TruthVerificationKeywords {
		if strings.Contains(lower, asPhrase(keyword)) {
			matched = append(matched, keyword)
		}
	}
	return matched
}

func computeVoiceScore(q *model.Question, metrics model.AnalysisMetrics, stressIndicators, truthKeywords []string) float64 {
	score := 0.8

	score -= float64(len(stressIndicators)) * 0.1
	score += float64(len(truthKeywords)) * 0.05

	score -= metrics.LatencyIndex * 0.2
	score -= metrics.DisfluencyRate * 0.3
	score += metrics.HonestyLexicon * 0.2
	score -= metrics.PitchVariability * 0.1
	score += metrics.EnergyStability * 0.1

	// Critical questions are intentionally harder to score well on
	weightFactor := float64(q.Weight) / 10.0
	score *= 1.0 - weightFactor*0.2

	return clamp01(score)
}

func deriveRiskFlags(q *model.Question, voiceScore float64, stressIndicators []string) []string {
	flags := []string{}

	if voiceScore < 0.3 {
		flags = append(flags, model.FlagScoreVeryLow)
	}
	if voiceScore < 0.5 {
		flags = append(flags, model.FlagScoreLow)
	}
	if len(stressIndicators) >= 3 {
		flags = append(flags, model.FlagMultipleStress)
	}
	if q.IsCritical() && voiceScore < 0.6 {
		flags = append(flags, model.FlagCriticalLowScore)
	}
	if q.IsHighStress() && len(stressIndicators) >= 2 {
		flags = append(flags, model.FlagHighTension)
	}

	return flags
}

// asPhrase converts a catalog tag like "mas_o_menos" into the spoken
// phrase matched against transcripts
func asPhrase(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}
