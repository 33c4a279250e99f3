package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"support-desk/internal/models"

	"go.uber.org/zap"
)

// KnowledgeSource loads the knowledge records of one tier. There are two
// implementations: CSV files (the default) and a Postgres table.
type KnowledgeSource interface {
	Load(ctx context.Context, tier models.Tier) ([]models.KnowledgeRecord, error)
}

// CSVKnowledgeSource reads tier knowledge bases from two CSV files with a
// "Question" and an "Answer" column. A missing file or a missing column is
// an error; the caller treats it as fatal at startup.
type CSVKnowledgeSource struct {
	generalPath string
	seniorPath  string
	logger      *zap.Logger
}

func NewCSVKnowledgeSource(generalPath, seniorPath string, logger *zap.Logger) *CSVKnowledgeSource {
	return &CSVKnowledgeSource{
		generalPath: generalPath,
		seniorPath:  seniorPath,
		logger:      logger,
	}
}

func (s *CSVKnowledgeSource) Load(ctx context.Context, tier models.Tier) ([]models.KnowledgeRecord, error) {
	path := s.generalPath
	if tier == models.TierSenior {
		path = s.seniorPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge base file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("knowledge base file %s is empty", path)
	}

	questionCol, answerCol := -1, -1
	for i, name := range rows[0] {
		switch name {
		case "Question":
			questionCol = i
		case "Answer":
			answerCol = i
		}
	}
	if questionCol == -1 {
		return nil, fmt.Errorf("knowledge base file %s must contain a 'Question' column", path)
	}
	if answerCol == -1 {
		return nil, fmt.Errorf("knowledge base file %s must contain an 'Answer' column", path)
	}

	records := make([]models.KnowledgeRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record := models.KnowledgeRecord{
			Question: row[questionCol],
			Answer:   row[answerCol],
		}
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("knowledge base file %s row %d: %w", path, i+2, err)
		}
		records = append(records, record)
	}

	s.logger.Info("Loaded knowledge base",
		zap.String("tier", string(tier)),
		zap.String("path", path),
		zap.Int("records", len(records)),
	)

	return records, nil
}
