package model

// Category groups interview questions by subject area
type Category string

const (
	CategoryBasicInfo         Category = "basic_info"
	CategoryDailyOperation    Category = "daily_operation"
	CategoryOperationalCosts  Category = "operational_costs"
	CategoryBusinessStructure Category = "business_structure"
	CategoryAssetsPatrimony   Category = "assets_patrimony"
	CategoryCreditHistory     Category = "credit_history"
	CategoryPaymentIntention  Category = "payment_intention"
	CategoryRiskEvaluation    Category = "risk_evaluation"
)

// Categories returns every question category in catalog order
func Categories() []Category {
	return []Category{
		CategoryBasicInfo,
		CategoryDailyOperation,
		CategoryOperationalCosts,
		CategoryBusinessStructure,
		CategoryAssetsPatrimony,
		CategoryCreditHistory,
		CategoryPaymentIntention,
		CategoryRiskEvaluation,
	}
}

// RiskImpact classifies how much a question can move the final decision
type RiskImpact string

const (
	RiskImpactLow    RiskImpact = "LOW"
	RiskImpactMedium RiskImpact = "MEDIUM"
	RiskImpactHigh   RiskImpact = "HIGH"
)

// QuestionAnalytics holds the scoring metadata attached to a question
type QuestionAnalytics struct {
	ExpectedResponseTime      float64  `json:"expectedResponseTime" bson:"expectedResponseTime"` // seconds
	StressIndicatorPatterns   []string `json:"stressIndicatorPatterns" bson:"stressIndicatorPatterns"`
	TruthVerificationKeywords []string `json:"truthVerificationKeywords" bson:"truthVerificationKeywords"`
}

// Question is one catalog entry of the structured interview
type Question struct {
	ID                   string            `json:"id" bson:"_id"`
	Category             Category          `json:"category" bson:"category"`
	Question             string            `json:"question" bson:"question"`
	Weight               int               `json:"weight" bson:"weight"`               // 1-10 criticality
	StressLevel          int               `json:"stressLevel" bson:"stressLevel"`     // 1-5
	EstimatedTime        int               `json:"estimatedTime" bson:"estimatedTime"` // seconds
	RiskImpact           RiskImpact        `json:"riskImpact" bson:"riskImpact"`
	VerificationTriggers []string          `json:"verificationTriggers" bson:"verificationTriggers"`
	FollowUpQuestions    []string          `json:"followUpQuestions,omitempty" bson:"followUpQuestions,omitempty"`
	Analytics            QuestionAnalytics `json:"analytics" bson:"analytics"`
}

// IsCritical reports whether the question carries decision-critical weight
func (q *Question) IsCritical() bool {
	return q.Weight >= 9
}

// IsHighStress reports whether the question is expected to stress the applicant
func (q *Question) IsHighStress() bool {
	return q.StressLevel >= 4
}
