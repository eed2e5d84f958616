package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "avi_analyses_total",
		Help: "Total number of voice responses analyzed",
	})

	RiskFlagsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "avi_risk_flags_total",
		Help: "Total number of risk flags raised across all responses",
	})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "avi_analysis_duration_seconds",
		Help:    "Time spent analyzing one response end to end",
		Buckets: prometheus.DefBuckets,
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "avi_active_sessions",
		Help: "Number of interview sessions currently active",
	})

	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "avi_reports_generated_total",
		Help: "Total number of session reports generated",
	})
)
