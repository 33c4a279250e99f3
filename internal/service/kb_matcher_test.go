package service

import (
	"testing"

	"support-desk/internal/models"
	"support-desk/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []models.KnowledgeRecord {
	return []models.KnowledgeRecord{
		{Question: "What are your store hours?", Answer: "9am-5pm daily"},
		{Question: "What is your return policy?", Answer: "Items can be returned within 30 days with a receipt."},
	}
}

func TestMatchIdenticalQuestion(t *testing.T) {
	matcher := NewKBMatcher(logger.Get())

	result := matcher.Match("What are your store hours?", testRecords())

	require.NotNil(t, result.Answer)
	assert.Equal(t, "9am-5pm daily", *result.Answer)
	assert.Equal(t, 100.0, result.Score)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	matcher := NewKBMatcher(logger.Get())

	result := matcher.Match("WHAT ARE YOUR STORE HOURS?", testRecords())

	require.NotNil(t, result.Answer)
	assert.Equal(t, "9am-5pm daily", *result.Answer)
	assert.Equal(t, 100.0, result.Score)
}

func TestMatchThresholdIsStrict(t *testing.T) {
	matcher := NewKBMatcher(logger.Get())
	records := []models.KnowledgeRecord{
		{Question: "abcd", Answer: "threshold answer"},
	}

	// One substitution in 4 runes: distance 2 over a combined length of 8,
	// a similarity of exactly 75. At the threshold no answer is returned.
	result := matcher.Match("abcx", records)
	assert.Nil(t, result.Answer)
	assert.Equal(t, 75.0, result.Score)
}

func TestMatchJustAboveThreshold(t *testing.T) {
	matcher := NewKBMatcher(logger.Get())
	records := []models.KnowledgeRecord{
		{Question: "aaaaaaaaaaaaaaaaaaabcdefg", Answer: "above threshold"},
	}

	// Six substitutions in 25 runes: distance 12 over a combined length of
	// 50, a similarity of 76.
	result := matcher.Match("aaaaaaaaaaaaaaaaaaatuvwxy", records)
	require.NotNil(t, result.Answer)
	assert.Equal(t, "above threshold", *result.Answer)
	assert.InDelta(t, 76.0, result.Score, 1e-9)
}

func TestMatchBelowThresholdReportsScore(t *testing.T) {
	matcher := NewKBMatcher(logger.Get())

	result := matcher.Match("completely unrelated gibberish zzz", testRecords())

	assert.Nil(t, result.Answer)
	assert.Greater(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, MatchThreshold)
}

func TestMatchEmptyRecordSet(t *testing.T) {
	matcher := NewKBMatcher(logger.Get())

	assert.NotPanics(t, func() {
		result := matcher.Match("anything", nil)
		assert.Nil(t, result.Answer)
		assert.Equal(t, 0.0, result.Score)
	})
}

func TestMatchPicksBestRecord(t *testing.T) {
	matcher := NewKBMatcher(logger.Get())
	records := []models.KnowledgeRecord{
		{Question: "Do you offer gift cards?", Answer: "gift cards"},
		{Question: "Do you offer gift wrap?", Answer: "gift wrap"},
	}

	result := matcher.Match("Do you offer gift wrap?", records)

	require.NotNil(t, result.Answer)
	assert.Equal(t, "gift wrap", *result.Answer)
	assert.Equal(t, 100.0, result.Score)
}
