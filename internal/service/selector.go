package service

import (
	"strings"

	"support-desk/internal/models"
)

const (
	fallbackNoReply         = "No reply generated."
	fallbackEmptyTranscript = "Chat ended with no messages recorded."
)

// ResponseSelector extracts the single message worth showing the caller out
// of a finished transcript. The transcript may contain empty
// acknowledgments, the literal string "None" from the transport, or the
// escalation sentinel itself, none of which are valid final answers.
// Select is a pure function of the transcript.
type ResponseSelector struct{}

func NewResponseSelector() *ResponseSelector {
	return &ResponseSelector{}
}

// Select scans the transcript in reverse and returns the text of the most
// recent agent turn that carries real content.
func (s *ResponseSelector) Select(transcript models.Transcript) string {
	if len(transcript) == 0 {
		return fallbackEmptyTranscript
	}

	for i := len(transcript) - 1; i >= 0; i-- {
		turn := transcript[i]
		if !turn.Speaker.IsAgent() {
			continue
		}
		text := strings.TrimSpace(turn.Text)
		if text == "" || text == "None" || strings.Contains(text, models.EscalationSentinel) {
			continue
		}
		return text
	}

	return fallbackNoReply
}
