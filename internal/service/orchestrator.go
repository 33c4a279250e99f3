package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"support-desk/internal/models"

	"go.uber.org/zap"
)

// State of one escalation exchange.
type State string

const (
	StateAwaitingGeneral State = "awaiting_general"
	StateAwaitingSenior  State = "awaiting_senior"
	StateResolved        State = "resolved"
	StateExhausted       State = "exhausted"
)

const (
	// MaxRounds caps the total number of responder turns per request.
	// Reaching it is a safety valve, not an error.
	MaxRounds = 10
	// MaxConsecutiveReplies caps how often the same responder may speak in
	// a row. A capped responder simply stops producing turns.
	MaxConsecutiveReplies = 2
	// minSubstantiveLength guards against accepting a trivial senior
	// acknowledgment as a final answer. A heuristic proxy, kept as-is;
	// see DESIGN.md before changing it.
	minSubstantiveLength = 50
)

// Orchestrator drives the bounded exchange between the synthetic customer
// turn and the two responders. Each Run allocates a fresh transcript; no
// state is shared across requests.
type Orchestrator struct {
	general     Responder
	senior      Responder
	turnTimeout time.Duration
	logger      *zap.Logger
}

func NewOrchestrator(general, senior Responder, turnTimeout time.Duration, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		general:     general,
		senior:      senior,
		turnTimeout: turnTimeout,
		logger:      logger,
	}
}

// Run seeds the transcript with the customer message and alternates
// responder turns until the exchange resolves, runs out of rounds, or a
// responder fails. The transcript is returned in every case so the
// caller can still select a reply from a partially completed exchange.
func (o *Orchestrator) Run(ctx context.Context, message string) (models.Transcript, State, error) {
	transcript := models.Transcript{
		{Speaker: models.SpeakerCustomer, Text: message},
	}

	state := StateAwaitingGeneral
	rounds := 0
	consecutive := 0
	var lastSpeaker models.Speaker

	for state == StateAwaitingGeneral || state == StateAwaitingSenior {
		if rounds >= MaxRounds {
			o.logger.Warn("Round cap reached without resolution", zap.Int("rounds", rounds))
			state = StateExhausted
			break
		}

		responder := o.general
		if state == StateAwaitingSenior {
			responder = o.senior
		}
		if responder.Speaker() != lastSpeaker {
			consecutive = 0
		}
		if consecutive >= MaxConsecutiveReplies {
			o.logger.Warn("Responder reply cap reached",
				zap.String("speaker", string(responder.Speaker())),
			)
			state = StateExhausted
			break
		}

		turn, err := o.respondWithTimeout(ctx, responder, transcript)
		if err != nil {
			return transcript, state, err
		}

		// Appended unconditionally; the termination predicate below only
		// ever inspects (speaker, text) of this newest turn.
		transcript = append(transcript, turn)
		rounds++
		consecutive++
		lastSpeaker = turn.Speaker

		state = nextState(state, turn)
		o.logger.Info("Turn completed",
			zap.String("speaker", string(turn.Speaker)),
			zap.Int("round", rounds),
			zap.String("state", string(state)),
		)
	}

	return transcript, state, nil
}

func (o *Orchestrator) respondWithTimeout(ctx context.Context, responder Responder, transcript models.Transcript) (models.Turn, error) {
	if o.turnTimeout <= 0 {
		return responder.Respond(ctx, transcript)
	}
	turnCtx, cancel := context.WithTimeout(ctx, o.turnTimeout)
	defer cancel()
	return responder.Respond(turnCtx, transcript)
}

// nextState evaluates the termination predicate against the newest turn.
// It deliberately ignores any transport-level role metadata, which the
// underlying chat transport reports inconsistently; only the speaker and
// the text are trustworthy.
func nextState(current State, last models.Turn) State {
	text := strings.TrimSpace(last.Text)

	switch last.Speaker {
	case models.SpeakerGeneralAgent:
		if strings.Contains(text, models.EscalationSentinel) {
			return StateAwaitingSenior
		}
		if text != "" && hasTerminalPunctuation(text) {
			return StateResolved
		}
	case models.SpeakerSeniorAgent:
		if utf8.RuneCountInString(text) > minSubstantiveLength {
			return StateResolved
		}
	}

	return current
}

func hasTerminalPunctuation(text string) bool {
	return strings.HasSuffix(text, ".") ||
		strings.HasSuffix(text, "!") ||
		strings.HasSuffix(text, "?")
}
