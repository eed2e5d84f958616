package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"aviengine/internal/engine"
	"aviengine/internal/model"
	"aviengine/internal/service"
)

// InterviewHandler handles session lifecycle and response analysis endpoints
type InterviewHandler struct {
	interviews *service.InterviewService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(interviews *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// Start handles POST /v1/sessions
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if r.Body != nil {
		// An empty body means defaults
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	state, err := h.interviews.StartSession(r.Context(), req.TargetQuestions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, model.StartSessionResponse{
		SessionID:       state.SessionID,
		TargetQuestions: state.TargetQuestions,
	})
}

// Analyze handles POST /v1/sessions/{sessionId}/responses
func (h *InterviewHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req model.AnalyzeResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	resp, err := h.interviews.AnalyzeResponse(r.Context(), sessionID, &req)
	if err != nil {
		writeInterviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/sessions/{sessionId}
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.interviews.GetSession(r.Context(), sessionID)
	if err != nil {
		writeInterviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// GetState handles GET /v1/sessions/{sessionId}/state
func (h *InterviewHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.interviews.GetState(r.Context(), sessionID)
	if err != nil {
		writeInterviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// End handles POST /v1/sessions/{sessionId}/end
func (h *InterviewHandler) End(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.interviews.EndSession(r.Context(), sessionID)
	if err != nil {
		writeInterviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// FinancialCoherence handles GET /v1/sessions/{sessionId}/financial-coherence
func (h *InterviewHandler) FinancialCoherence(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	coherence, err := h.interviews.ValidateFinancialCoherence(r.Context(), sessionID)
	if err != nil {
		writeInterviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, coherence)
}

func writeInterviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionEnded):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrQuestionNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
