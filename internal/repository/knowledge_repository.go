package repository

import (
	"context"
	"fmt"
	"time"

	"support-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// KnowledgeRepository is the Postgres-backed knowledge source. Records are
// kept in the knowledge_records table, one row per question/answer pair,
// partitioned by tier. Rows are written by cmd/seed from the CSV files.
type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *KnowledgeRepository) Load(ctx context.Context, tier models.Tier) ([]models.KnowledgeRecord, error) {
	query := squirrel.Select("question", "answer").
		From("knowledge_records").
		Where(squirrel.Eq{"tier": string(tier)}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s knowledge base: %w", tier, err)
	}
	defer rows.Close()

	var records []models.KnowledgeRecord
	for rows.Next() {
		var record models.KnowledgeRecord
		if err := rows.Scan(&record.Question, &record.Answer); err != nil {
			return nil, err
		}
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("%s knowledge base: %w", tier, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Info("Loaded knowledge base",
		zap.String("tier", string(tier)),
		zap.Int("records", len(records)),
	)

	return records, nil
}

// Create inserts one record for a tier. Used by the seed command.
func (r *KnowledgeRepository) Create(ctx context.Context, tier models.Tier, record models.KnowledgeRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	query := squirrel.Insert("knowledge_records").
		Columns("id", "tier", "question", "answer", "created_at").
		Values(uuid.New(), string(tier), record.Question, record.Answer, time.Now()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// DeleteTier removes all records of a tier so a seed run can replace them.
func (r *KnowledgeRepository) DeleteTier(ctx context.Context, tier models.Tier) error {
	query := squirrel.Delete("knowledge_records").
		Where(squirrel.Eq{"tier": string(tier)}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
