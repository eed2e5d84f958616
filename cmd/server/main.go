package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aviengine/config"
	"aviengine/internal/cache"
	"aviengine/internal/catalog"
	internalconfig "aviengine/internal/config"
	"aviengine/internal/engine"
	"aviengine/internal/model"
	"aviengine/internal/repository"
	"aviengine/internal/service"
	"aviengine/internal/transport/rest"
	"aviengine/internal/transport/ws"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	voiceCfg := internalconfig.DefaultVoiceConfig()
	if voiceCfg.IsEnabled() {
		log.WithField("baseUrl", voiceCfg.BaseURL).Info("voice backend configured")
	} else {
		log.Warn("VOICE_API_KEY not set, using simulated voice signals")
	}

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.WithError(err).Fatal("failed to ping MongoDB")
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.WithError(err).Fatal("failed to ping Redis")
	}
	log.Info("connected to Redis")

	// Repositories
	questionRepo := repository.NewQuestionRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Question catalog: prefer the seeded set, fall back to the built-in one
	cat, err := loadCatalog(ctx, questionRepo, log)
	if err != nil {
		log.WithError(err).Fatal("failed to build question catalog")
	}
	log.WithField("questions", cat.Len()).Info("catalog loaded")

	// Caches
	stateCache := cache.NewSessionStateCache(rdb)
	aggregateCache := cache.NewAggregateCache(rdb)

	// Scoring engine
	noise := engine.NewNoise(time.Now().UnixNano())
	analyzer := engine.NewResponseAnalyzer(cat, noise)
	micro := engine.NewMicroLocalEngine(cat)
	checker := engine.NewConsistencyChecker(nil)
	aggregator := engine.NewSessionAggregator(cat, micro, checker, noise)
	reportBuilder := engine.NewReportBuilder(cat)

	// WebSocket hub
	wsHub := ws.NewHub(log)

	// Services
	authSvc := service.NewAuthService()
	voiceClient := service.NewVoiceClient(voiceCfg, cat, noise, log)
	interviewSvc := service.NewInterviewService(cat, analyzer, micro, aggregator, stateCache, aggregateCache, sessionRepo, voiceClient, log)
	reportSvc := service.NewReportService(interviewSvc, reportBuilder, reportRepo, log)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	interviewSvc.SetBroadcaster(wsHub)

	wsHandler := ws.NewHandler(wsHub, authSvc, log)

	container := &rest.Container{
		AuthService:      authSvc,
		InterviewService: interviewSvc,
		ReportService:    reportSvc,
		Catalog:          cat,
		WSHub:            wsHub,
		WSHandler:        wsHandler,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}

func loadCatalog(ctx context.Context, questionRepo repository.QuestionRepo, log *logrus.Logger) (*catalog.Catalog, error) {
	stored, err := questionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		log.Warn("no questions in database, using built-in catalog (run cmd/seed to persist it)")
		return catalog.Default()
	}

	questions := make([]model.Question, 0, len(stored))
	for _, q := range stored {
		questions = append(questions, *q)
	}
	return catalog.New(questions)
}
