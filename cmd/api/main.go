package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smart-task-analyzer/config"
	_ "smart-task-analyzer/docs" // Swagger docs
	analyzerHTTP "smart-task-analyzer/internal/analyzer/delivery/http"
	"smart-task-analyzer/internal/analyzer/usecase"
	"smart-task-analyzer/internal/httpserver"
	"smart-task-analyzer/internal/middleware"
	"smart-task-analyzer/pkg/gemini"
	"smart-task-analyzer/pkg/log"
)

// @title       Smart Task Analyzer API
// @description AI-powered task categorization: category, priority, reasoning, and due date extraction via Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional, for local development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Analyzer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client
	var llm gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		llm, err = gemini.New(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			APIURL:  cfg.Gemini.APIURL,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
			return
		}
		logger.Infof(ctx, "Gemini client initialized with model %s", llm.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing; analyze requests will fail until it is configured")
	}

	// 4. Analyzer domain
	analyzeUC := usecase.New(logger, llm, nil)
	analyzerHandler := analyzerHTTP.New(logger, analyzeUC)

	// 5. Middleware
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin:  cfg.RateLimit.AnalyzePerMin,
		RateLimitClients: cfg.RateLimit.ClientCache,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		AnalyzerHandler: analyzerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
