// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/postcraft-ai/content-platform/internal/config"
	"github.com/postcraft-ai/content-platform/internal/events"
	"github.com/postcraft-ai/content-platform/internal/handler"
	"github.com/postcraft-ai/content-platform/internal/llm"
	"github.com/postcraft-ai/content-platform/internal/middleware"
	"github.com/postcraft-ai/content-platform/internal/service"
	"github.com/postcraft-ai/content-platform/pkg/logger"
	"github.com/postcraft-ai/content-platform/pkg/metrics"
	"github.com/postcraft-ai/content-platform/pkg/tracing"
)

func main() {
	// Load configuration; a missing backend credential is fatal.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "content-platform", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to NATS when configured; nil publisher is a no-op.
	publisher, err := events.Connect(cfg.NATSURL, log)
	if err != nil {
		log.Error("failed to connect to NATS", zap.Error(err))
		os.Exit(1)
	}
	defer publisher.Close()

	// Initialize the generation backend with the retry policy.
	backend, err := llm.NewClient(llm.Provider(cfg.Provider), cfg.APIKey())
	if err != nil {
		log.Error("failed to create backend client", zap.Error(err))
		os.Exit(1)
	}
	providerName := backend.Name()
	client := llm.WithRetry(backend, llm.RetryPolicy{
		MaxRetries:   cfg.MaxRetries,
		InitialDelay: cfg.InitialRetryDelay,
		Multiplier:   2,
	}, func(err error, delay time.Duration) {
		metrics.GenerationRetriesTotal.WithLabelValues(providerName).Inc()
		log.Warn("backend call failed, retrying",
			zap.Error(err),
			zap.Duration("delay", delay),
		)
	})

	// Initialize services
	contentSvc := service.NewContentService(client, publisher, log)
	chatSvc := service.NewChatService(client, publisher, cfg.ChatHistoryWindow, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(publisher)
	generateHandler := handler.NewGenerateHandler(contentSvc, log)
	chatHandler := handler.NewChatHandler(chatSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Post("/generate", generateHandler.FromMedia)
		r.Post("/generate/text", generateHandler.FromText)
		r.Post("/extract-text", generateHandler.ExtractText)
		r.Post("/chat", chatHandler.Respond)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort), zap.String("provider", providerName))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
