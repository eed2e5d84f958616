package rest

import (
	"aviengine/internal/catalog"
	"aviengine/internal/service"
	"aviengine/internal/transport/rest/handler"
	"aviengine/internal/transport/rest/middleware"
	"aviengine/internal/transport/ws"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	InterviewService *service.InterviewService
	ReportService    *service.ReportService
	Catalog          *catalog.Catalog
	WSHub            *ws.Hub
	WSHandler        *ws.Handler
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	interviewHandler := handler.NewInterviewHandler(c.InterviewService)
	catalogHandler := handler.NewCatalogHandler(c.Catalog)
	reportHandler := handler.NewReportHandler(c.ReportService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/sessions/{sessionId}/monitor", c.WSHandler.MonitorWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Analyst routes (require analyst auth)
	analystRoutes := v1.NewRoute().Subrouter()
	analystRoutes.Use(authMW.RequireAnalyst)

	analystRoutes.HandleFunc("/sessions", interviewHandler.Start).Methods("POST", "OPTIONS")
	analystRoutes.HandleFunc("/sessions/{sessionId}", interviewHandler.Get).Methods("GET", "OPTIONS")
	analystRoutes.HandleFunc("/sessions/{sessionId}/state", interviewHandler.GetState).Methods("GET", "OPTIONS")
	analystRoutes.HandleFunc("/sessions/{sessionId}/responses", interviewHandler.Analyze).Methods("POST", "OPTIONS")
	analystRoutes.HandleFunc("/sessions/{sessionId}/end", interviewHandler.End).Methods("POST", "OPTIONS")
	analystRoutes.HandleFunc("/sessions/{sessionId}/financial-coherence", interviewHandler.FinancialCoherence).Methods("GET", "OPTIONS")

	analystRoutes.HandleFunc("/catalog", catalogHandler.List).Methods("GET", "OPTIONS")
	analystRoutes.HandleFunc("/catalog/stats", catalogHandler.Stats).Methods("GET", "OPTIONS")

	analystRoutes.HandleFunc("/reports/{sessionId}", reportHandler.Get).Methods("GET", "OPTIONS")
	analystRoutes.HandleFunc("/reports/{sessionId}", reportHandler.Generate).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
