package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"aviengine/internal/engine"
	"aviengine/internal/metrics"
	"aviengine/internal/model"
	"aviengine/internal/repository"
)

// ReportService builds and persists session reports
type ReportService struct {
	interviews *InterviewService
	builder    *engine.ReportBuilder
	reportRepo repository.ReportRepo
	log        *logrus.Logger
}

// NewReportService creates a report service
func NewReportService(interviews *InterviewService, builder *engine.ReportBuilder, reportRepo repository.ReportRepo, log *logrus.Logger) *ReportService {
	return &ReportService{
		interviews: interviews,
		builder:    builder,
		reportRepo: reportRepo,
		log:        log,
	}
}

// GenerateReport builds a fresh report from the session's current state and
// stores it, replacing any previous snapshot
func (s *ReportService) GenerateReport(ctx context.Context, sessionID string) (*model.SessionReport, error) {
	session, err := s.interviews.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report := s.builder.Build(session)

	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}

	metrics.ReportsGenerated.Inc()
	s.log.WithFields(logrus.Fields{
		"sessionId": sessionID,
		"riskLevel": report.Session.RiskLevel,
	}).Info("report generated")

	return report, nil
}

// GetReport returns the stored report, generating one on first access
func (s *ReportService) GetReport(ctx context.Context, sessionID string) (*model.SessionReport, error) {
	report, err := s.reportRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if report != nil {
		return report, nil
	}
	return s.GenerateReport(ctx, sessionID)
}
