package models

import "fmt"

type Tier string

const (
	TierGeneral Tier = "general"
	TierSenior  Tier = "senior"
)

// KnowledgeRecord is one question/answer pair from a tier's knowledge base.
// Records are immutable once loaded.
type KnowledgeRecord struct {
	Question string `db:"question"`
	Answer   string `db:"answer"`
}

// Validate rejects records with missing fields. Called once at load time so
// a bad row is a configuration error, not a per-query failure.
func (r KnowledgeRecord) Validate() error {
	if r.Question == "" {
		return fmt.Errorf("knowledge record has empty question")
	}
	if r.Answer == "" {
		return fmt.Errorf("knowledge record %q has empty answer", r.Question)
	}
	return nil
}

// MatchResult is the outcome of a fuzzy lookup. Answer is nil unless Score
// exceeded the match threshold.
type MatchResult struct {
	Answer *string
	Score  float64 // 0..100, 100 = identical
}
