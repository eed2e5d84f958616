package engine

import (
	"aviengine/internal/catalog"
	"aviengine/internal/model"
)

// neutralCrossValidation is the defined score when a session has no prior
// history or no related prior question
const neutralCrossValidation = 0.8

// MicroLocalEngine computes the per-response risk assessment relative to
// the ordered history of prior results in the same session. It only reads
// the catalog and the history, never mutates them.
type MicroLocalEngine struct {
	catalog *catalog.Catalog
}

// NewMicroLocalEngine creates a micro-local risk engine
func NewMicroLocalEngine(cat *catalog.Catalog) *MicroLocalEngine {
	return &MicroLocalEngine{catalog: cat}
}

// Analyze produces the MicroLocalAnalysis for the current result given all
// prior results in answer order
func (e *MicroLocalEngine) Analyze(current *model.VoiceAnalysisResult, previous []model.VoiceAnalysisResult) (*model.MicroLocalAnalysis, error) {
	question, ok := e.catalog.Get(current.QuestionID)
	if !ok {
		return nil, questionNotFound(current.QuestionID)
	}

	return &model.MicroLocalAnalysis{
		QuestionID:           current.QuestionID,
		Category:             question.Category,
		LocalRiskScore:       localRiskScore(current, &question),
		CrossValidationScore: e.crossValidation(current, &question, previous),
		CoherencyFlags:       coherencyFlags(current, &question, previous),
		RecommendedFollowUp:  followUpRecommendations(&question, current),
		VerificationTriggers: append([]string(nil), question.VerificationTriggers...),
	}, nil
}

func localRiskScore(result *model.VoiceAnalysisResult, q *model.Question) float64 {
	score := result.VoiceScore

	// Critical questions answered poorly are far riskier
	if q.IsCritical() && result.VoiceScore < 0.6 {
		score *= 0.7
	}

	if len(result.StressIndicators) >= 2 {
		stressFactor := float64(q.StressLevel) / 5.0
		score *= 1.0 - stressFactor*0.2
	}

	score -= float64(len(result.RiskFlags)) * 0.1

	return clamp01(score)
}

// crossValidation compares the current response with prior answers to
// related questions: same category, or sharing a verification trigger
func (e *MicroLocalEngine) crossValidation(current *model.VoiceAnalysisResult, q *model.Question, previous []model.VoiceAnalysisResult) float64 {
	if len(previous) == 0 {
		return neutralCrossValidation
	}

	related := e.relatedResults(q, previous)
	if len(related) == 0 {
		return neutralCrossValidation
	}

	scores := make([]float64, 0, len(related))
	for _, r := range related {
		scores = append(scores, r.VoiceScore)
	}
	deviation := abs(current.VoiceScore - mean(scores))

	score := neutralCrossValidation - deviation*0.5

	// Recurring stress across related answers is a consistent pattern,
	// penalized only lightly
	commonStress := 0
	for _, indicator := range current.StressIndicators {
		for _, r := range related {
			if contains(r.StressIndicators, indicator) {
				commonStress++
				break
			}
		}
	}
	if commonStress >= 2 {
		score *= 0.9
	}

	return clamp(score, 0.2, 1)
}

func (e *MicroLocalEngine) relatedResults(q *model.Question, previous []model.VoiceAnalysisResult) []model.VoiceAnalysisResult {
	var related []model.VoiceAnalysisResult
	for _, prev := range previous {
		prevQuestion, ok := e.catalog.Get(prev.QuestionID)
		if !ok {
			continue
		}
		if prevQuestion.Category == q.Category || sharesTrigger(q.VerificationTriggers, prevQuestion.VerificationTriggers) {
			related = append(related, prev)
		}
	}
	return related
}

func sharesTrigger(a, b []string) bool {
	for _, trigger := range a {
		if contains(b, trigger) {
			return true
		}
	}
	return false
}

func coherencyFlags(current *model.VoiceAnalysisResult, q *model.Question, previous []model.VoiceAnalysisResult) []string {
	flags := []string{}

	if len(previous) > 0 {
		recent := previous
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		scores := make([]float64, 0, len(recent))
		for _, r := range recent {
			scores = append(scores, r.VoiceScore)
		}
		if abs(current.VoiceScore-mean(scores)) > 0.4 {
			flags = append(flags, model.CoherencyDrasticChange)
		}
	}

	if q.StressLevel <= 2 && len(current.StressIndicators) >= 2 {
		flags = append(flags, model.CoherencyUnexpectedStress)
	}
	if q.StressLevel >= 4 && len(current.StressIndicators) == 0 {
		flags = append(flags, model.CoherencySuspiciousCalm)
	}

	expected := q.Analytics.ExpectedResponseTime
	if expected > 0 && current.ResponseTime > 0 {
		if current.ResponseTime > expected*3 {
			flags = append(flags, model.CoherencyExcessiveTime)
		} else if current.ResponseTime < expected*0.2 {
			flags = append(flags, model.CoherencyTooFast)
		}
	}

	return flags
}

func followUpRecommendations(q *model.Question, result *model.VoiceAnalysisResult) []string {
	recommendations := append([]string(nil), q.FollowUpQuestions...)

	if contains(result.RiskFlags, model.FlagScoreLow) {
		recommendations = append(recommendations,
			"Profundizar en las razones de la respuesta evasiva",
			"Verificar información con fuentes externas",
		)
	}

	if len(result.StressIndicators) >= 2 {
		recommendations = append(recommendations,
			"Repetir pregunta de manera más casual",
			"Hacer preguntas de verificación cruzada",
		)
	}

	if q.IsCritical() && result.VoiceScore < 0.6 {
		recommendations = append(recommendations,
			"Esta es una pregunta crítica - considerar re-evaluación",
			"Solicitar documentación de respaldo",
		)
	}

	return recommendations
}
