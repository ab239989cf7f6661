package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"jobprep/interview/internal/config"
	"jobprep/interview/internal/handlers"
	"jobprep/interview/internal/jobs"
	"jobprep/interview/internal/llm"
	_ "jobprep/interview/internal/llm/gemini"
	"jobprep/interview/internal/metrics"
	"jobprep/interview/internal/repositories/mongo"
	"jobprep/interview/internal/routers"
	"jobprep/interview/internal/selector"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded", zap.String("provider", cfg.Provider))

	ctx := context.Background()
	mongoClient, err := mongo.NewClient(ctx)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	questionRepo, err := mongo.NewQuestionRepo(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialize question repository", zap.Error(err))
	}
	sessionRepo, err := mongo.NewSessionRepo(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialize session repository", zap.Error(err))
	}

	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	questionSelector := selector.New(questionRepo, aiProvider, logger, selector.Options{
		GenerationAttempts: cfg.GenerationAttempts,
	})

	interviewHandler := handlers.NewInterviewHandler(questionSelector, aiProvider, sessionRepo, logger)
	questionHandler := handlers.NewQuestionHandler(questionRepo, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, mongoClient)

	maintenance := jobs.NewMaintenanceJob(questionRepo, &jobs.MaintenanceConfig{
		Schedule:   cfg.MaintenanceSchedule,
		StaleAfter: cfg.StaleAfter,
		Enabled:    cfg.MaintenanceEnabled,
	}, logger)
	if err := maintenance.Start(); err != nil {
		logger.Error("Failed to start maintenance job", zap.Error(err))
	}
	defer maintenance.Stop()

	router := chi.NewRouter()
	router.Use(
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		chimiddleware.Timeout(60*time.Second),
		metrics.Middleware("interview"),
	)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler, questionHandler, cfg.JWTSecret)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Interview service starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
