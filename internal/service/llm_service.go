package service

import (
	"context"
	"fmt"
	"strings"

	"support-desk/internal/models"
	"support-desk/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// Generator is the external reasoning collaborator the responders call when
// a knowledge base lookup is not enough. Implemented by LLMService in
// production and by a scripted stub in tests.
type Generator interface {
	// Generate produces a free-form reply for the given tier from the
	// transcript so far.
	Generate(ctx context.Context, tier models.Tier, transcript models.Transcript) (string, error)
	// ClassifySensitive reports whether a customer question falls into a
	// sensitive category that the general agent must not answer.
	ClassifySensitive(ctx context.Context, query string) (bool, error)
}

// LLMService wraps the GigaChat client with one generative model per tier.
// The general tier model only classifies sensitivity; the senior tier model
// synthesizes resolutions for questions its knowledge base cannot answer.
type LLMService struct {
	client  *gigago.Client
	general *gigago.GenerativeModel
	senior  *gigago.GenerativeModel
	logger  *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	general := client.GenerativeModel(cfg.GeneralModel)
	general.SystemInstruction = generalAgentInstructions
	general.Temperature = 0.1

	senior := client.GenerativeModel(cfg.SeniorModel)
	senior.SystemInstruction = seniorAgentInstructions
	senior.Temperature = 0.3

	logger.Info("LLM service initialized",
		zap.String("general_model", cfg.GeneralModel),
		zap.String("senior_model", cfg.SeniorModel),
	)

	return &LLMService{
		client:  client,
		general: general,
		senior:  senior,
		logger:  logger,
	}, nil
}

func (s *LLMService) Generate(ctx context.Context, tier models.Tier, transcript models.Transcript) (string, error) {
	model := s.general
	if tier == models.TierSenior {
		model = s.senior
	}

	prompt := flattenTranscript(transcript)
	if prompt == "" {
		return "", fmt.Errorf("cannot generate a reply from an empty transcript")
	}

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debug("Generated reply",
		zap.String("tier", string(tier)),
		zap.Int("text_length", len(text)),
	)
	return text, nil
}

// flattenTranscript renders the exchange as a labeled dialogue so it fits
// a single user message.
func flattenTranscript(transcript models.Transcript) string {
	var b strings.Builder
	for _, turn := range transcript {
		text := strings.TrimSpace(turn.Text)
		if text == "" {
			continue
		}
		label := "Customer"
		switch turn.Speaker {
		case models.SpeakerGeneralAgent:
			label = "General agent"
		case models.SpeakerSeniorAgent:
			label = "Senior agent"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, text)
	}
	return strings.TrimSpace(b.String())
}

func (s *LLMService) ClassifySensitive(ctx context.Context, query string) (bool, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: fmt.Sprintf(sensitivityPrompt, query)},
	}

	resp, err := s.general.Generate(ctx, messages)
	if err != nil {
		return false, fmt.Errorf("failed to classify question: %w", err)
	}
	if len(resp.Choices) == 0 {
		return false, fmt.Errorf("no response from LLM")
	}

	verdict := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	return strings.Contains(verdict, "SENSITIVE"), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
