package engine

import (
	"fmt"
	"strings"
	"time"

	"aviengine/internal/catalog"
	"aviengine/internal/model"
)

// ReportBuilder renders a session's aggregated state into the structured
// report handed to analysts and downstream systems
type ReportBuilder struct {
	catalog *catalog.Catalog
}

// NewReportBuilder creates a report builder
func NewReportBuilder(cat *catalog.Catalog) *ReportBuilder {
	return &ReportBuilder{catalog: cat}
}

// Build derives the full report from a session snapshot. It never mutates
// the session; building twice from the same snapshot yields the same report
// modulo CreatedAt.
func (b *ReportBuilder) Build(session *model.Session) *model.SessionReport {
	return &model.SessionReport{
		Session: model.ReportSession{
			ID:               session.SessionID,
			Progress:         fmt.Sprintf("%d/%d", session.CompletedQuestions, session.TotalQuestions),
			OverallCoherence: session.OverallCoherenceScore,
			RiskLevel:        sessionRiskLevel(session),
		},
		CategoryAnalysis:  b.categoryAnalysis(session),
		RiskAreas:         append([]model.Category(nil), session.RiskAreas...),
		ConsistencyIssues: consistencyIssues(session.ConsistencyChecks),
		Recommendations: model.ReportRecommendations{
			NextQuestions:      nextQuestions(session.NextQuestionRecommendation),
			InvestigationAreas: investigationAreas(session.MicroAnalyses),
			UrgentFlags:        urgentFlags(session.MicroAnalyses),
		},
		Summary:   b.summary(session),
		CreatedAt: time.Now().UTC(),
	}
}

func sessionRiskLevel(session *model.Session) model.RiskLevel {
	switch {
	case session.OverallCoherenceScore < 0.4 || len(session.RiskAreas) >= 3:
		return model.RiskLevelHigh
	case session.OverallCoherenceScore < 0.6 || len(session.RiskAreas) >= 2:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

func categoryRiskLevel(avgRisk float64) model.RiskLevel {
	switch {
	case avgRisk < 0.4:
		return model.RiskLevelHigh
	case avgRisk < 0.6:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

func (b *ReportBuilder) categoryAnalysis(session *model.Session) map[model.Category]model.CategoryPerformance {
	scores := map[model.Category][]float64{}
	flags := map[model.Category]int{}
	for _, analysis := range session.MicroAnalyses {
		scores[analysis.Category] = append(scores[analysis.Category], analysis.LocalRiskScore)
		flags[analysis.Category] += len(analysis.CoherencyFlags)
	}

	performance := map[model.Category]model.CategoryPerformance{}
	for category, categoryScores := range scores {
		avg := mean(categoryScores)
		performance[category] = model.CategoryPerformance{
			QuestionsCompleted: len(categoryScores),
			AvgRiskScore:       avg,
			TotalFlags:         flags[category],
			RiskLevel:          categoryRiskLevel(avg),
		}
	}
	return performance
}

func consistencyIssues(checks []model.ConsistencyCheck) []model.ConsistencyIssue {
	issues := []model.ConsistencyIssue{}
	for _, check := range checks {
		if check.ConsistencyScore >= 0.6 {
			continue
		}
		issues = append(issues, model.ConsistencyIssue{
			QuestionPair: check.QuestionPair,
			Score:        check.ConsistencyScore,
			Flags:        append([]string(nil), check.InconsistencyFlags...),
		})
	}
	return issues
}

func nextQuestions(recommended []model.Question) []model.RecommendedQuestion {
	limit := len(recommended)
	if limit > 5 {
		limit = 5
	}
	questions := make([]model.RecommendedQuestion, 0, limit)
	for _, q := range recommended[:limit] {
		questions = append(questions, model.RecommendedQuestion{
			ID:       q.ID,
			Question: q.Question,
			Priority: q.Weight,
			Category: q.Category,
		})
	}
	return questions
}

// investigationAreas gathers categories with elevated local risk plus
// per-question markers for suspicious coherency flags, deduplicated in
// insertion order
func investigationAreas(analyses []model.MicroLocalAnalysis) []string {
	seen := map[string]bool{}
	areas := []string{}
	add := func(area string) {
		if seen[area] {
			return
		}
		seen[area] = true
		areas = append(areas, area)
	}

	for _, analysis := range analyses {
		if analysis.LocalRiskScore < 0.5 {
			add(string(analysis.Category))
		}
		for _, flag := range analysis.CoherencyFlags {
			if strings.Contains(flag, "inconsistencia") || strings.Contains(flag, "sospechosa") {
				add("investigar_" + analysis.QuestionID)
			}
		}
	}
	return areas
}

func urgentFlags(analyses []model.MicroLocalAnalysis) []string {
	urgent := []string{}
	for _, analysis := range analyses {
		if analysis.LocalRiskScore < 0.4 {
			urgent = append(urgent, analysis.QuestionID)
		}
	}
	return urgent
}

func (b *ReportBuilder) summary(session *model.Session) model.ReportSummary {
	totalFlags := 0
	localScores := make([]float64, 0, len(session.MicroAnalyses))
	critical := 0
	coverage := map[model.Category]int{}

	for _, analysis := range session.MicroAnalyses {
		totalFlags += len(analysis.CoherencyFlags)
		localScores = append(localScores, analysis.LocalRiskScore)
		coverage[analysis.Category]++
		if q, ok := b.catalog.Get(analysis.QuestionID); ok && q.IsCritical() {
			critical++
		}
	}

	return model.ReportSummary{
		TotalRiskFlags:             totalFlags,
		AvgLocalRiskScore:          mean(localScores),
		CriticalQuestionsCompleted: critical,
		CategoryCoverage:           coverage,
	}
}
