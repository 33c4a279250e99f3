package service

import (
	"context"
	"fmt"

	"support-desk/internal/models"

	"go.uber.org/zap"
)

// Capability enumerates the knowledge base lookups a responder may perform.
// This replaces schema-described dynamic tool dispatch: each variant has a
// fixed parameter shape and is dispatched by an explicit switch.
type Capability int

const (
	GeneralKBLookup Capability = iota
	SeniorKBLookup
)

func (c Capability) String() string {
	switch c {
	case GeneralKBLookup:
		return "retrieve_from_general_kb"
	case SeniorKBLookup:
		return "retrieve_from_senior_kb"
	default:
		return "unknown"
	}
}

// ToolCall is one capability invocation with its single query parameter.
type ToolCall struct {
	Capability Capability
	Query      string
}

// KBDispatcher holds both tiers' records and routes tool calls to the
// matcher.
type KBDispatcher struct {
	matcher        *KBMatcher
	generalRecords []models.KnowledgeRecord
	seniorRecords  []models.KnowledgeRecord
	logger         *zap.Logger
}

func NewKBDispatcher(
	matcher *KBMatcher,
	generalRecords, seniorRecords []models.KnowledgeRecord,
	logger *zap.Logger,
) *KBDispatcher {
	return &KBDispatcher{
		matcher:        matcher,
		generalRecords: generalRecords,
		seniorRecords:  seniorRecords,
		logger:         logger,
	}
}

func (d *KBDispatcher) Dispatch(call ToolCall) (models.MatchResult, error) {
	if call.Query == "" {
		return models.MatchResult{}, fmt.Errorf("%s: query must not be empty", call.Capability)
	}

	var result models.MatchResult
	switch call.Capability {
	case GeneralKBLookup:
		result = d.matcher.Match(call.Query, d.generalRecords)
	case SeniorKBLookup:
		result = d.matcher.Match(call.Query, d.seniorRecords)
	default:
		return models.MatchResult{}, fmt.Errorf("unknown capability %d", call.Capability)
	}

	d.logger.Info("Knowledge base lookup",
		zap.String("capability", call.Capability.String()),
		zap.String("query", call.Query),
		zap.Float64("score", result.Score),
		zap.Bool("hit", result.Answer != nil),
	)
	return result, nil
}

// Responder produces one turn from the transcript so far. Two
// configurations exist, one per tier.
type Responder interface {
	Speaker() models.Speaker
	Respond(ctx context.Context, transcript models.Transcript) (models.Turn, error)
}

// GeneralResponder is the first tier. Its mandatory first action is a
// general knowledge base lookup; it answers with the KB answer verbatim on
// a hit, unless the question is sensitive, in which case it emits the
// escalation sentinel. It never answers sensitive topics itself.
type GeneralResponder struct {
	tools     *KBDispatcher
	generator Generator
	logger    *zap.Logger
}

func NewGeneralResponder(tools *KBDispatcher, generator Generator, logger *zap.Logger) *GeneralResponder {
	return &GeneralResponder{
		tools:     tools,
		generator: generator,
		logger:    logger,
	}
}

func (r *GeneralResponder) Speaker() models.Speaker {
	return models.SpeakerGeneralAgent
}

func (r *GeneralResponder) Respond(ctx context.Context, transcript models.Transcript) (models.Turn, error) {
	query := transcript.CustomerQuery()

	result, err := r.tools.Dispatch(ToolCall{Capability: GeneralKBLookup, Query: query})
	if err != nil {
		return models.Turn{}, err
	}

	if result.Answer == nil {
		return models.Turn{Speaker: r.Speaker(), Text: models.EscalationSentinel}, nil
	}

	sensitive, err := r.generator.ClassifySensitive(ctx, query)
	if err != nil {
		// When classification is unavailable the safe route is the
		// senior tier, never a direct answer.
		r.logger.Warn("Sensitivity classification failed, escalating", zap.Error(err))
		return models.Turn{Speaker: r.Speaker(), Text: models.EscalationSentinel}, nil
	}
	if sensitive {
		return models.Turn{Speaker: r.Speaker(), Text: models.EscalationSentinel}, nil
	}

	return models.Turn{Speaker: r.Speaker(), Text: *result.Answer}, nil
}

// SeniorResponder is the second tier. Its mandatory first action is a
// senior knowledge base lookup with the original customer query; on a miss
// it falls back to free-form synthesis, the only path where generation
// substitutes for a lookup.
type SeniorResponder struct {
	tools     *KBDispatcher
	generator Generator
	logger    *zap.Logger
}

func NewSeniorResponder(tools *KBDispatcher, generator Generator, logger *zap.Logger) *SeniorResponder {
	return &SeniorResponder{
		tools:     tools,
		generator: generator,
		logger:    logger,
	}
}

func (r *SeniorResponder) Speaker() models.Speaker {
	return models.SpeakerSeniorAgent
}

func (r *SeniorResponder) Respond(ctx context.Context, transcript models.Transcript) (models.Turn, error) {
	query := transcript.CustomerQuery()

	result, err := r.tools.Dispatch(ToolCall{Capability: SeniorKBLookup, Query: query})
	if err != nil {
		return models.Turn{}, err
	}
	if result.Answer != nil {
		return models.Turn{Speaker: r.Speaker(), Text: *result.Answer}, nil
	}

	text, err := r.generator.Generate(ctx, models.TierSenior, transcript)
	if err != nil {
		return models.Turn{}, fmt.Errorf("senior resolution failed: %w", err)
	}
	return models.Turn{Speaker: r.Speaker(), Text: text}, nil
}
