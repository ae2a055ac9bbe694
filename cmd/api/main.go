package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jdev86/daily-task-app/config"
	_ "github.com/jdev86/daily-task-app/docs" // Swagger docs
	"github.com/jdev86/daily-task-app/internal/httpserver"
	"github.com/jdev86/daily-task-app/internal/middleware"
	plannerHTTP "github.com/jdev86/daily-task-app/internal/planner/delivery/http"
	"github.com/jdev86/daily-task-app/internal/planner/usecase"
	"github.com/jdev86/daily-task-app/pkg/gcalendar"
	"github.com/jdev86/daily-task-app/pkg/gemini"
	"github.com/jdev86/daily-task-app/pkg/log"
	"github.com/jdev86/daily-task-app/pkg/ratelimit"
)

// @title       Daily Task Planner API
// @description AI-powered daily schedule planning backed by the Gemini LLM.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	logger.Info(ctx, "Starting Daily Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Outbound LLM rate limiter
	limiter := ratelimit.NewWindowLimiter(cfg.Planner.RateLimit, cfg.Planner.RateWindow)
	logger.Infof(ctx, "LLM quota: %d calls per %s", cfg.Planner.RateLimit, cfg.Planner.RateWindow)

	// 6. Planner UseCase
	plannerUC := usecase.New(logger, geminiClient, calendarClient, limiter, usecase.Config{
		MaxRetries: cfg.Planner.MaxRetries,
		BaseDelay:  cfg.Planner.RetryBaseDelay,
		Timezone:   cfg.Gemini.Timezone,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})

	// 7. Delivery + middleware
	plannerHandler := plannerHTTP.New(logger, plannerUC)
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Middleware:     mw,
		PlannerHandler: plannerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
