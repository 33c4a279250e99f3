package service

import (
	"testing"

	"support-desk/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSelectSkipsSentinelAndPicksSeniorAnswer(t *testing.T) {
	selector := NewResponseSelector()
	transcript := models.Transcript{
		{Speaker: models.SpeakerCustomer, Text: "hours?"},
		{Speaker: models.SpeakerGeneralAgent, Text: models.EscalationSentinel},
		{Speaker: models.SpeakerSeniorAgent, Text: "We are open 24/7."},
	}

	assert.Equal(t, "We are open 24/7.", selector.Select(transcript))
}

func TestSelectSkipsEmptyAndNoneTurns(t *testing.T) {
	selector := NewResponseSelector()
	transcript := models.Transcript{
		{Speaker: models.SpeakerCustomer, Text: "hours?"},
		{Speaker: models.SpeakerGeneralAgent, Text: "9am-5pm daily"},
		{Speaker: models.SpeakerSeniorAgent, Text: "None"},
		{Speaker: models.SpeakerSeniorAgent, Text: "   "},
	}

	assert.Equal(t, "9am-5pm daily", selector.Select(transcript))
}

func TestSelectIgnoresCustomerTurns(t *testing.T) {
	selector := NewResponseSelector()
	transcript := models.Transcript{
		{Speaker: models.SpeakerCustomer, Text: "is anyone there?"},
	}

	assert.Equal(t, "No reply generated.", selector.Select(transcript))
}

func TestSelectFallbackWhenOnlySentinelsExist(t *testing.T) {
	selector := NewResponseSelector()
	transcript := models.Transcript{
		{Speaker: models.SpeakerCustomer, Text: "hours?"},
		{Speaker: models.SpeakerGeneralAgent, Text: models.EscalationSentinel},
		{Speaker: models.SpeakerGeneralAgent, Text: models.EscalationSentinel},
	}

	assert.Equal(t, "No reply generated.", selector.Select(transcript))
}

func TestSelectEmptyTranscript(t *testing.T) {
	selector := NewResponseSelector()

	assert.Equal(t, "Chat ended with no messages recorded.", selector.Select(models.Transcript{}))
}

func TestSelectIsIdempotent(t *testing.T) {
	selector := NewResponseSelector()
	transcript := models.Transcript{
		{Speaker: models.SpeakerCustomer, Text: "hours?"},
		{Speaker: models.SpeakerGeneralAgent, Text: models.EscalationSentinel},
		{Speaker: models.SpeakerSeniorAgent, Text: "We are open 24/7."},
	}

	first := selector.Select(transcript)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, selector.Select(transcript))
	}
}
