package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"support-desk/internal/models"
	"support-desk/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newChatService(general, senior Responder) *ChatService {
	orchestrator := NewOrchestrator(general, senior, time.Second, logger.Get())
	return NewChatService(orchestrator, NewResponseSelector(), logger.Get())
}

func TestChatReturnsSelectedAnswer(t *testing.T) {
	general := &scriptedResponder{speaker: models.SpeakerGeneralAgent, replies: []string{models.EscalationSentinel}}
	senior := &scriptedResponder{
		speaker: models.SpeakerSeniorAgent,
		replies: []string{"We are open around the clock, every single day of the year."},
	}
	svc := newChatService(general, senior)

	response := svc.Chat(context.Background(), "hours?")

	assert.Equal(t, senior.replies[0], response)
}

func TestChatConvertsErrorsToText(t *testing.T) {
	general := &scriptedResponder{speaker: models.SpeakerGeneralAgent, err: errors.New("transport failure")}
	senior := &scriptedResponder{speaker: models.SpeakerSeniorAgent, replies: []string{"unused"}}
	svc := newChatService(general, senior)

	response := svc.Chat(context.Background(), "hours?")

	assert.True(t, strings.HasPrefix(response, "An error occurred:"), "got %q", response)
	assert.Contains(t, response, "transport failure")
}

func TestChatNeverReturnsEmpty(t *testing.T) {
	general := &scriptedResponder{speaker: models.SpeakerGeneralAgent, replies: []string{""}}
	senior := &scriptedResponder{speaker: models.SpeakerSeniorAgent, replies: []string{"unused"}}
	svc := newChatService(general, senior)

	response := svc.Chat(context.Background(), "hello?")

	assert.Equal(t, "No reply generated.", response)
}
