package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-routine/config"
	_ "smart-routine/docs" // Swagger docs
	"smart-routine/internal/app"
	commandHTTP "smart-routine/internal/command/delivery/http"
	tgDelivery "smart-routine/internal/command/delivery/telegram"
	"smart-routine/internal/httpserver"
	moodHTTP "smart-routine/internal/mood/delivery/http"
	taskHTTP "smart-routine/internal/task/delivery/http"
	"smart-routine/pkg/log"
)

// @title       SmartRoutine API
// @description Personal routine assistant: natural-language commands, tasks, Google Calendar and mood tracking.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SmartRoutine...")
	logger.Infof(ctx, "Environment: %s, timezone: %s", cfg.Environment.Name, cfg.Assistant.Timezone)

	// 3. Domains
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer a.Close()

	loc := a.DateMath.Location()

	var telegramHandler tgDelivery.Handler
	if a.Bot != nil {
		telegramHandler = tgDelivery.New(logger, a.Commands, a.Bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := a.Bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		DB:              a.DB,
		TaskHandler:     taskHTTP.New(logger, a.Tasks),
		MoodHandler:     moodHTTP.New(logger, a.Moods, loc),
		CommandHandler:  commandHTTP.New(logger, a.Commands, loc),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
