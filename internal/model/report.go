package model

import "time"

// RiskLevel is the coarse classification derived from session coherence
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// ReportSession is the session header of a report
type ReportSession struct {
	ID               string    `json:"id" bson:"id"`
	Progress         string    `json:"progress" bson:"progress"` // "completed/total"
	OverallCoherence float64   `json:"overallCoherence" bson:"overallCoherence"`
	RiskLevel        RiskLevel `json:"riskLevel" bson:"riskLevel"`
}

// CategoryPerformance summarizes one answered category
type CategoryPerformance struct {
	QuestionsCompleted int       `json:"questionsCompleted" bson:"questionsCompleted"`
	AvgRiskScore       float64   `json:"avgRiskScore" bson:"avgRiskScore"`
	TotalFlags         int       `json:"totalFlags" bson:"totalFlags"`
	RiskLevel          RiskLevel `json:"riskLevel" bson:"riskLevel"`
}

// ConsistencyIssue is a failed consistency pair surfaced in the report
type ConsistencyIssue struct {
	QuestionPair [2]string `json:"questionPair" bson:"questionPair"`
	Score        float64   `json:"score" bson:"score"`
	Flags        []string  `json:"flags" bson:"flags"`
}

// RecommendedQuestion is a next-question entry in the report
type RecommendedQuestion struct {
	ID       string   `json:"id" bson:"id"`
	Question string   `json:"question" bson:"question"`
	Priority int      `json:"priority" bson:"priority"` // question weight
	Category Category `json:"category" bson:"category"`
}

// ReportRecommendations bundles what the interviewer should do next
type ReportRecommendations struct {
	NextQuestions      []RecommendedQuestion `json:"nextQuestions" bson:"nextQuestions"`
	InvestigationAreas []string              `json:"investigationAreas" bson:"investigationAreas"`
	UrgentFlags        []string              `json:"urgentFlags" bson:"urgentFlags"` // question ids with local risk < 0.4
}

// ReportSummary holds session-level counters
type ReportSummary struct {
	TotalRiskFlags             int              `json:"totalRiskFlags" bson:"totalRiskFlags"`
	AvgLocalRiskScore          float64          `json:"avgLocalRiskScore" bson:"avgLocalRiskScore"`
	CriticalQuestionsCompleted int              `json:"criticalQuestionsCompleted" bson:"criticalQuestionsCompleted"`
	CategoryCoverage           map[Category]int `json:"categoryCoverage" bson:"categoryCoverage"`
}

// SessionReport is the structured, serializable snapshot handed to
// downstream consumers
type SessionReport struct {
	Session           ReportSession                    `json:"session" bson:"session"`
	CategoryAnalysis  map[Category]CategoryPerformance `json:"categoryAnalysis" bson:"categoryAnalysis"`
	RiskAreas         []Category                       `json:"riskAreas" bson:"riskAreas"`
	ConsistencyIssues []ConsistencyIssue               `json:"consistencyIssues" bson:"consistencyIssues"`
	Recommendations   ReportRecommendations            `json:"recommendations" bson:"recommendations"`
	Summary           ReportSummary                    `json:"summary" bson:"summary"`
	CreatedAt         time.Time                        `json:"createdAt" bson:"createdAt"`
}
