package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"support-desk/internal/api"
	"support-desk/internal/api/handlers"
	"support-desk/internal/models"
	"support-desk/internal/repository"
	"support-desk/internal/service"
	"support-desk/pkg/config"
	"support-desk/pkg/logger"
	"support-desk/pkg/postgres"

	"go.uber.org/zap"
)

// @title Support Desk API
// @version 1.0
// @description Two-tier customer support escalation service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@support-desk.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting support desk service")

	ctx := context.Background()

	// Knowledge source: CSV files by default, Postgres when configured.
	var source repository.KnowledgeSource
	switch cfg.Knowledge.Source {
	case "postgres":
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		source = repository.NewKnowledgeRepository(db, appLogger)
	case "csv":
		source = repository.NewCSVKnowledgeSource(cfg.Knowledge.GeneralCSV, cfg.Knowledge.SeniorCSV, appLogger)
	default:
		appLogger.Fatal("Unknown knowledge source", zap.String("source", cfg.Knowledge.Source))
	}

	// Both tiers must load or the process refuses to serve.
	generalRecords, err := source.Load(ctx, models.TierGeneral)
	if err != nil {
		appLogger.Fatal("Failed to load general knowledge base", zap.Error(err))
	}
	seniorRecords, err := source.Load(ctx, models.TierSenior)
	if err != nil {
		appLogger.Fatal("Failed to load senior knowledge base", zap.Error(err))
	}

	// Initialize services
	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	matcher := service.NewKBMatcher(appLogger)
	tools := service.NewKBDispatcher(matcher, generalRecords, seniorRecords, appLogger)

	general := service.NewGeneralResponder(tools, llmService, appLogger)
	senior := service.NewSeniorResponder(tools, llmService, appLogger)

	orchestrator := service.NewOrchestrator(general, senior, cfg.Chat.TurnTimeout, appLogger)
	selector := service.NewResponseSelector()
	chatService := service.NewChatService(orchestrator, selector, appLogger)

	// Initialize handlers and router
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	app := api.SetupRouter(chatHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
