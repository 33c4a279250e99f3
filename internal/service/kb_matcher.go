package service

import (
	"strings"

	"support-desk/internal/models"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"go.uber.org/zap"
)

// MatchThreshold is the minimum similarity score (exclusive) a record must
// reach before its answer is returned. Scores at or below the threshold
// still carry the score for logging but no answer.
const MatchThreshold = 75.0

// KBMatcher performs fuzzy question lookup over a tier's knowledge records
// using the Levenshtein edit-distance ratio. Stateless; safe for concurrent
// use.
type KBMatcher struct {
	logger *zap.Logger
}

func NewKBMatcher(logger *zap.Logger) *KBMatcher {
	return &KBMatcher{logger: logger}
}

// Match scores every record's question against the query and returns the
// best one. The answer is populated only when the score strictly exceeds
// MatchThreshold. An empty record set yields {nil, 0}.
func (m *KBMatcher) Match(query string, records []models.KnowledgeRecord) models.MatchResult {
	queryRunes := []rune(strings.ToLower(query))

	best := models.MatchResult{Score: 0}
	var bestAnswer string
	for _, record := range records {
		questionRunes := []rune(strings.ToLower(record.Question))
		score := levenshtein.RatioForStrings(questionRunes, queryRunes, levenshtein.DefaultOptions) * 100
		if score > best.Score {
			best.Score = score
			bestAnswer = record.Answer
		}
	}

	if best.Score > MatchThreshold {
		best.Answer = &bestAnswer
	}

	return best
}
