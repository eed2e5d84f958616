package model

// StartSessionRequest opens a new interview session
type StartSessionRequest struct {
	TargetQuestions int `json:"targetQuestions"`
}

// StartSessionResponse returns the new session id
type StartSessionResponse struct {
	SessionID       string `json:"sessionId"`
	TargetQuestions int    `json:"targetQuestions"`
}

// AnalyzeResponseRequest submits one answered question. Either Signal is
// supplied directly (features already extracted) or AudioBase64 carries the
// clip for the external voice backend.
type AnalyzeResponseRequest struct {
	QuestionID  string          `json:"questionId"`
	Signal      *ResponseSignal `json:"signal,omitempty"`
	AudioBase64 string          `json:"audioBase64,omitempty"`
	DurationSec float64         `json:"durationSec,omitempty"`
}

// AnalyzeResponseResponse returns the per-response assessments plus the
// refreshed session aggregate
type AnalyzeResponseResponse struct {
	Result   *VoiceAnalysisResult `json:"result"`
	Analysis *MicroLocalAnalysis  `json:"analysis"`
	Session  *Session             `json:"session"`
}
