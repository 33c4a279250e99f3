package models

// EscalationSentinel is the exact phrase the general agent emits to hand a
// question over to the senior tier. Responders, the orchestrator and the
// selector all compare against this one constant; it is the only signal
// that transfers control between tiers.
const EscalationSentinel = "I need to escalate this to our senior team."

type Speaker string

const (
	SpeakerCustomer     Speaker = "customer"
	SpeakerGeneralAgent Speaker = "general_agent"
	SpeakerSeniorAgent  Speaker = "senior_agent"
)

// IsAgent reports whether the speaker is one of the two responders.
func (s Speaker) IsAgent() bool {
	return s == SpeakerGeneralAgent || s == SpeakerSeniorAgent
}

// Turn is one message in an exchange. Text may be empty: the underlying
// chat transport produces empty acknowledgments and the selector has to
// skip them.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Transcript is the ordered sequence of turns for one request. A fresh
// value is allocated per request and appended to by the orchestrator only;
// once handed to the selector it is read-only. Transcripts never outlive
// or cross requests.
type Transcript []Turn

// Last returns the most recent turn, or false if the transcript is empty.
func (t Transcript) Last() (Turn, bool) {
	if len(t) == 0 {
		return Turn{}, false
	}
	return t[len(t)-1], true
}

// CustomerQuery returns the text of the first customer turn, which is the
// original question the exchange was seeded with.
func (t Transcript) CustomerQuery() string {
	for _, turn := range t {
		if turn.Speaker == SpeakerCustomer {
			return turn.Text
		}
	}
	return ""
}
