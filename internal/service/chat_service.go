package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService is the request boundary of the escalation pipeline. Whatever
// happens inside the exchange, the caller receives a response string; an
// internal failure is logged with full context and converted to text, never
// surfaced as a transport error.
type ChatService struct {
	orchestrator *Orchestrator
	selector     *ResponseSelector
	logger       *zap.Logger
}

func NewChatService(orchestrator *Orchestrator, selector *ResponseSelector, logger *zap.Logger) *ChatService {
	return &ChatService{
		orchestrator: orchestrator,
		selector:     selector,
		logger:       logger,
	}
}

// Chat runs one escalation exchange for the message and returns the reply
// text to show the caller.
func (s *ChatService) Chat(ctx context.Context, message string) string {
	requestID := uuid.New().String()
	log := s.logger.With(zap.String("request_id", requestID))
	log.Info("Received message", zap.String("message", message))

	transcript, state, err := s.orchestrator.Run(ctx, message)
	if err != nil {
		log.Error("Error during chat processing",
			zap.Error(err),
			zap.String("state", string(state)),
			zap.Int("turns", len(transcript)),
		)
		errText := sanitizeUTF8(fmt.Sprintf("An error occurred: %v", err))
		if errText == "" {
			errText = "An unexpected server error occurred."
		}
		return errText
	}

	response := s.selector.Select(transcript)
	log.Info("Sending response",
		zap.String("state", string(state)),
		zap.Int("turns", len(transcript)),
		zap.String("response", response),
	)
	return response
}
