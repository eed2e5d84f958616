package model

// Stress indicator tags emitted by the response analyzer.
// The Spanish tag values are the wire contract consumed by the
// underwriting frontend and must not be renamed.
const (
	StressVerySlow    = "respuesta_muy_lenta"
	StressDelayed     = "demora_respuesta"
	StressTooFast     = "respuesta_demasiado_rapida"
	StressNervousness = "nerviosismo_detectado"
)

// Risk flag tags derived per response
const (
	FlagScoreVeryLow     = "score_muy_bajo"
	FlagScoreLow         = "score_bajo"
	FlagMultipleStress   = "multiples_indicadores_estres"
	FlagCriticalLowScore = "pregunta_critica_puntuacion_baja"
	FlagHighTension      = "alta_tension_pregunta_estresante"
)

// AcousticFeatures is the raw feature payload produced by the external
// feature-extraction backend. The engine never touches audio itself.
type AcousticFeatures struct {
	PitchSeries     []float64 `json:"pitchSeries" bson:"pitchSeries"`
	EnergySeries    []float64 `json:"energySeries" bson:"energySeries"`
	DisfluencyCount int       `json:"disfluencyCount,omitempty" bson:"disfluencyCount,omitempty"`
}

// ResponseSignal is one answered question as delivered by the
// audio/transcription layer
type ResponseSignal struct {
	Transcript   string           `json:"transcript,omitempty" bson:"transcript,omitempty"`
	Words        []string         `json:"words,omitempty" bson:"words,omitempty"`
	ResponseTime float64          `json:"responseTimeSeconds" bson:"responseTimeSeconds"` // seconds
	Features     AcousticFeatures `json:"acousticFeatures" bson:"acousticFeatures"`
}

// AnalysisMetrics are the five normalized per-response metrics, each in [0,1].
// Computed once per response and never mutated afterward.
type AnalysisMetrics struct {
	LatencyIndex     float64 `json:"latencyIndex" bson:"latencyIndex"`
	PitchVariability float64 `json:"pitchVariability" bson:"pitchVariability"`
	EnergyStability  float64 `json:"energyStability" bson:"energyStability"`
	DisfluencyRate   float64 `json:"disfluencyRate" bson:"disfluencyRate"`
	HonestyLexicon   float64 `json:"honestyLexicon" bson:"honestyLexicon"`
}

// VoiceAnalysisResult is the per-response risk profile produced by the
// response analyzer. Immutable once created; ordering within a session is
// significant because cross-validation depends on prior vs current.
type VoiceAnalysisResult struct {
	QuestionID                string          `json:"questionId" bson:"questionId"`
	VoiceScore                float64         `json:"voiceScore" bson:"voiceScore"` // [0,1]
	StressIndicators          []string        `json:"stressIndicators" bson:"stressIndicators"`
	TruthVerificationKeywords []string        `json:"truthVerificationKeywords" bson:"truthVerificationKeywords"`
	RiskFlags                 []string        `json:"riskFlags" bson:"riskFlags"`
	ResponseTime              float64         `json:"responseTime" bson:"responseTime"` // seconds
	AnalysisMetrics           AnalysisMetrics `json:"analysisMetrics" bson:"analysisMetrics"`
}

// HasHighStress reports whether the response fired two or more stress
// indicators, the threshold used by consistency pairing
func (r *VoiceAnalysisResult) HasHighStress() bool {
	return len(r.StressIndicators) >= 2
}
