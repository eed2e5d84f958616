package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"aviengine/internal/cache"
	"aviengine/internal/catalog"
	"aviengine/internal/engine"
	"aviengine/internal/metrics"
	"aviengine/internal/model"
	"aviengine/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session already ended")
)

// InterviewService drives the interview lifecycle: session state lives in
// Redis while the interview runs, ended sessions are persisted to MongoDB.
// The results list is append-only and single-writer per session.
type InterviewService struct {
	catalog     *catalog.Catalog
	analyzer    *engine.ResponseAnalyzer
	micro       *engine.MicroLocalEngine
	aggregator  *engine.SessionAggregator
	stateCache  cache.SessionStateCache
	aggregates  cache.AggregateCache
	sessionRepo repository.SessionRepo
	voice       *VoiceClient
	broadcaster Broadcaster
	log         *logrus.Logger
}

// NewInterviewService creates the interview service
func NewInterviewService(
	cat *catalog.Catalog,
	analyzer *engine.ResponseAnalyzer,
	micro *engine.MicroLocalEngine,
	aggregator *engine.SessionAggregator,
	stateCache cache.SessionStateCache,
	aggregates cache.AggregateCache,
	sessionRepo repository.SessionRepo,
	voice *VoiceClient,
	log *logrus.Logger,
) *InterviewService {
	return &InterviewService{
		catalog:     cat,
		analyzer:    analyzer,
		micro:       micro,
		aggregator:  aggregator,
		stateCache:  stateCache,
		aggregates:  aggregates,
		sessionRepo: sessionRepo,
		voice:       voice,
		log:         log,
	}
}

// SetBroadcaster injects the live event sink
func (s *InterviewService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// StartSession opens a new interview session
func (s *InterviewService) StartSession(ctx context.Context, targetQuestions int) (*model.SessionState, error) {
	if targetQuestions <= 0 || targetQuestions > s.catalog.Len() {
		targetQuestions = s.catalog.Len()
	}

	state := &model.SessionState{
		SessionID:       "avi_" + uuid.New().String()[:8],
		TargetQuestions: targetQuestions,
		Status:          model.SessionActive,
		Results:         []model.VoiceAnalysisResult{},
		StartedAt:       time.Now().UTC(),
	}

	if err := s.stateCache.Set(ctx, state); err != nil {
		return nil, err
	}

	metrics.ActiveSessions.Inc()
	s.log.WithFields(logrus.Fields{
		"sessionId":       state.SessionID,
		"targetQuestions": targetQuestions,
	}).Info("session started")

	return state, nil
}

// AnalyzeResponse processes one answered question. On any analysis error
// the stored state is left untouched.
func (s *InterviewService) AnalyzeResponse(ctx context.Context, sessionID string, req *model.AnalyzeResponseRequest) (*model.AnalyzeResponseResponse, error) {
	started := time.Now()

	state, err := s.getState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Status == model.SessionEnded {
		return nil, ErrSessionEnded
	}

	signal := req.Signal
	if signal == nil {
		signal, err = s.voice.ExtractSignal(ctx, req.QuestionID, req.AudioBase64, req.DurationSec)
		if err != nil {
			return nil, err
		}
	}

	result, err := s.analyzer.Analyze(req.QuestionID, signal)
	if err != nil {
		return nil, err
	}

	analysis, err := s.micro.Analyze(result, state.Results)
	if err != nil {
		return nil, err
	}

	state.Results = append(state.Results, *result)
	if err := s.stateCache.Set(ctx, state); err != nil {
		return nil, err
	}

	session, err := s.aggregator.BuildSession(state.SessionID, state.Results, state.TargetQuestions)
	if err != nil {
		return nil, err
	}
	if err := s.aggregates.Set(ctx, session); err != nil {
		s.log.WithError(err).Warn("failed to cache session aggregate")
	}

	metrics.AnalysesTotal.Inc()
	metrics.RiskFlagsTotal.Add(float64(len(result.RiskFlags)))
	metrics.AnalysisDuration.Observe(time.Since(started).Seconds())

	resp := &model.AnalyzeResponseResponse{
		Result:   result,
		Analysis: analysis,
		Session:  session,
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, "analysis_result", resp)
	}

	return resp, nil
}

// GetSession returns the aggregated session view, rebuilding it from state
// when the cached aggregate expired
func (s *InterviewService) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if session, err := s.aggregates.Get(ctx, sessionID); err == nil {
		return session, nil
	}

	state, err := s.getState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.aggregator.BuildSession(state.SessionID, state.Results, state.TargetQuestions)
	if err != nil {
		return nil, err
	}
	if err := s.aggregates.Set(ctx, session); err != nil {
		s.log.WithError(err).Warn("failed to cache session aggregate")
	}
	return session, nil
}

// GetState returns the raw session state
func (s *InterviewService) GetState(ctx context.Context, sessionID string) (*model.SessionState, error) {
	return s.getState(ctx, sessionID)
}

// EndSession closes the interview and persists its final state
func (s *InterviewService) EndSession(ctx context.Context, sessionID string) (*model.SessionState, error) {
	state, err := s.getState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Status == model.SessionEnded {
		return nil, ErrSessionEnded
	}

	now := time.Now().UTC()
	state.Status = model.SessionEnded
	state.EndedAt = &now

	if err := s.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	if err := s.stateCache.Set(ctx, state); err != nil {
		s.log.WithError(err).Warn("failed to refresh ended session state in cache")
	}

	metrics.ActiveSessions.Dec()
	s.log.WithFields(logrus.Fields{
		"sessionId": sessionID,
		"completed": len(state.Results),
	}).Info("session ended")

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, "session_ended", state)
	}

	return state, nil
}

// ValidateFinancialCoherence runs the financial cross-check over the
// session's answers so far
func (s *InterviewService) ValidateFinancialCoherence(ctx context.Context, sessionID string) (*model.FinancialCoherence, error) {
	state, err := s.getState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.aggregator.ValidateFinancialCoherence(state.Results), nil
}

// getState reads live state from Redis, falling back to MongoDB for
// sessions whose cache entry expired
func (s *InterviewService) getState(ctx context.Context, sessionID string) (*model.SessionState, error) {
	state, err := s.stateCache.Get(ctx, sessionID)
	if err == nil {
		return state, nil
	}
	if err != redis.Nil {
		return nil, err
	}

	state, err = s.sessionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}
	return state, nil
}
