package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"transcript-summary-api/config"
	"transcript-summary-api/frontend"
	"transcript-summary-api/handlers"
	"transcript-summary-api/llm"
	"transcript-summary-api/mailer"
	"transcript-summary-api/markdown"
	"transcript-summary-api/middleware"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	settings, err := config.Load()
	if err != nil {
		sugar.Fatalw("failed to load settings",
			"error", err)
	}
	if settings.OpenRouter.APIKey == "" {
		sugar.Warn("OPENROUTER_API_KEY is not set; summary generation will fail")
	}

	sender := mailer.NewSMTPSender(settings.Mail, logger)
	if !sender.Configured() {
		sugar.Warn("SMTP is not fully configured; email sharing will fail")
	}

	r := newRouter(logger, settings, llm.NewClient(settings.OpenRouter, logger), markdown.NewRenderer(), sender)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", settings.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("Running on port",
			"port", settings.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed",
				"error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	sugar.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("graceful shutdown failed",
			"error", err)
	}
}

func newRouter(logger *zap.Logger, settings config.Settings, completer handlers.Completer, renderer handlers.HTMLRenderer, sender mailer.Sender) *gin.Engine {
	r := gin.New()
	logger.Info("Creating router")

	r.Use(middleware.RequestID())
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/healthcheck", "/metrics"},
		Context:    middleware.LogFields,
	}))
	r.Use(middleware.Metrics())
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Frontend
	frontend.RegisterRoutes(r, "/", settings.FrontendDir, logger)

	// API
	api := r.Group("/api")
	api.POST("/generate-summary", handlers.HandleGenerateSummary(logger, completer, renderer))
	api.POST("/share-email", handlers.HandleShareEmail(logger, sender))

	// Operations
	r.GET("/healthcheck", handlers.HandleHealthcheck())
	r.GET("/metrics", handlers.HandleMetrics())

	return r
}
