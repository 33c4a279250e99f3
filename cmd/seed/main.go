package main

import (
	"context"
	"log"

	"support-desk/internal/models"
	"support-desk/internal/repository"
	"support-desk/pkg/config"
	"support-desk/pkg/logger"
	"support-desk/pkg/postgres"

	"go.uber.org/zap"
)

// Imports the two knowledge base CSV files into the knowledge_records
// table, replacing whatever a previous seed run left behind. Run this once
// before starting the service with KNOWLEDGE_SOURCE=postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	csvSource := repository.NewCSVKnowledgeSource(cfg.Knowledge.GeneralCSV, cfg.Knowledge.SeniorCSV, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)

	appLogger.Info("Starting knowledge base seeding")

	for _, tier := range []models.Tier{models.TierGeneral, models.TierSenior} {
		records, err := csvSource.Load(ctx, tier)
		if err != nil {
			appLogger.Fatal("Failed to read knowledge base CSV",
				zap.String("tier", string(tier)),
				zap.Error(err),
			)
		}

		if err := knowledgeRepo.DeleteTier(ctx, tier); err != nil {
			appLogger.Fatal("Failed to clear tier",
				zap.String("tier", string(tier)),
				zap.Error(err),
			)
		}

		for _, record := range records {
			if err := knowledgeRepo.Create(ctx, tier, record); err != nil {
				appLogger.Fatal("Failed to insert record",
					zap.String("tier", string(tier)),
					zap.String("question", record.Question),
					zap.Error(err),
				)
			}
		}

		appLogger.Info("Seeded tier",
			zap.String("tier", string(tier)),
			zap.Int("records", len(records)),
		)
	}

	appLogger.Info("Knowledge base seeding completed")
}
