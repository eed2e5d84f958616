package model

import "time"

// Coherency flags emitted by the micro-local risk engine
const (
	CoherencyDrasticChange    = "cambio_drastico_puntuacion"
	CoherencyUnexpectedStress = "estres_inesperado_pregunta_simple"
	CoherencySuspiciousCalm   = "calma_sospechosa_pregunta_estresante"
	CoherencyExcessiveTime    = "tiempo_respuesta_excesivo"
	CoherencyTooFast          = "respuesta_demasiado_rapida_sospechosa"
)

// Inconsistency flags emitted by the consistency checker
const (
	InconsistencySevere        = "inconsistencia_grave"
	InconsistencyModerate      = "inconsistencia_moderada"
	InconsistencyStressPattern = "patron_estres_contradictorio"
)

// Financial coherence flags
const (
	FinancialIncomeMismatch = "ingresos_no_coinciden_con_operacion"
	FinancialExpensesExceed = "gastos_exceden_ingresos_declarados"
)

// MicroLocalAnalysis is the per-response risk assessment relative to the
// full prior history of the session. Produced once, appended in answer order.
type MicroLocalAnalysis struct {
	QuestionID           string   `json:"questionId" bson:"questionId"`
	Category             Category `json:"category" bson:"category"`
	LocalRiskScore       float64  `json:"localRiskScore" bson:"localRiskScore"`             // [0,1]
	CrossValidationScore float64  `json:"crossValidationScore" bson:"crossValidationScore"` // [0.2,1], 0.8 neutral
	CoherencyFlags       []string `json:"coherencyFlags" bson:"coherencyFlags"`
	RecommendedFollowUp  []string `json:"recommendedFollowUp" bson:"recommendedFollowUp"`
	VerificationTriggers []string `json:"verificationTriggers" bson:"verificationTriggers"`
}

// ConsistencyCheck scores the pairwise agreement of two answers expected
// to be mutually consistent, independent of interview order
type ConsistencyCheck struct {
	QuestionPair           [2]string `json:"questionPair" bson:"questionPair"`
	ConsistencyScore       float64   `json:"consistencyScore" bson:"consistencyScore"` // [0.2,1]
	InconsistencyFlags     []string  `json:"inconsistencyFlags" bson:"inconsistencyFlags"`
	SuggestedInvestigation []string  `json:"suggestedInvestigation" bson:"suggestedInvestigation"`
}

// FinancialCoherence is the outcome of the income/expense plausibility check
type FinancialCoherence struct {
	Coherent           bool       `json:"coherent" bson:"coherent"`
	Inconsistencies    []string   `json:"inconsistencies" bson:"inconsistencies"`
	SuggestedQuestions []Question `json:"suggestedQuestions" bson:"suggestedQuestions"`
}

// Session is the aggregated view of one interview, rebuilt as a fold over
// the ordered, append-only result list
type Session struct {
	SessionID                  string               `json:"sessionId" bson:"sessionId"`
	TotalQuestions             int                  `json:"totalQuestions" bson:"totalQuestions"`
	CompletedQuestions         int                  `json:"completedQuestions" bson:"completedQuestions"`
	MicroAnalyses              []MicroLocalAnalysis `json:"microAnalyses" bson:"microAnalyses"`
	ConsistencyChecks          []ConsistencyCheck   `json:"consistencyChecks" bson:"consistencyChecks"`
	OverallCoherenceScore      float64              `json:"overallCoherenceScore" bson:"overallCoherenceScore"` // [0,1]
	OverallScore               float64              `json:"overallScore" bson:"overallScore"`                   // weight-averaged voice score
	RiskAreas                  []Category           `json:"riskAreas" bson:"riskAreas"`
	Flags                      []string             `json:"flags" bson:"flags"` // deduplicated risk flags
	NextQuestionRecommendation []Question           `json:"nextQuestionRecommendations" bson:"nextQuestionRecommendations"`
}

// SessionStatus tracks the lifecycle of a live interview
type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionEnded  SessionStatus = "ended"
)

// SessionState is the live, append-only store of an interview. Results are
// the single source of truth; Session aggregates are derived from them so a
// session can be replayed deterministically.
type SessionState struct {
	SessionID       string                `json:"sessionId" bson:"sessionId"`
	TargetQuestions int                   `json:"targetQuestions" bson:"targetQuestions"`
	Status          SessionStatus         `json:"status" bson:"status"`
	Results         []VoiceAnalysisResult `json:"results" bson:"results"`
	StartedAt       time.Time             `json:"startedAt" bson:"startedAt"`
	EndedAt         *time.Time            `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
}
