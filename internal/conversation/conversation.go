package conversation

import (
	"context"
	"time"

	"hotel-assistant/pkg/log"
)

// Conversation owns one session's history and summary. It is not safe for
// concurrent use; the orchestrator serialises turns per session.
type Conversation struct {
	state      State
	summarizer Summarizer
	l          log.Logger
	timeout    time.Duration
	now        func() time.Time
}

// New starts an empty conversation in idle mode.
func New(sessionID string, s Summarizer, l log.Logger, timeout time.Duration) *Conversation {
	return Restore(State{SessionID: sessionID, Mode: ModeIdle}, s, l, timeout)
}

// Restore resumes a conversation from a persisted state.
func Restore(state State, s Summarizer, l log.Logger, timeout time.Duration) *Conversation {
	if state.Mode == "" {
		state.Mode = ModeIdle
	}
	if timeout <= 0 {
		timeout = DefaultSummaryTimeout
	}
	return &Conversation{
		state:      state,
		summarizer: s,
		l:          l,
		timeout:    timeout,
		now:        time.Now,
	}
}

// Record appends a turn and regenerates the summary from the full history.
// When the summarizer fails, a deterministic digest of the latest turns is used.
func (c *Conversation) Record(ctx context.Context, utterance, reply string) {
	c.state.Turns = append(c.state.Turns, Turn{Utterance: utterance, Reply: reply, At: c.now()})
	c.state.UpdatedAt = c.now()

	if c.summarizer == nil {
		c.state.Summary = Digest(c.state.Turns)
		return
	}

	sctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	summary, err := c.summarizer.Summarize(sctx, c.Turns())
	if err != nil || summary == "" {
		c.l.Warnf(ctx, "%s: summarizer failed, using digest: %v", LogPrefixRecord, err)
		summary = Digest(c.state.Turns)
	}
	c.state.Summary = summary
}

// Apply moves the session according to an executor's transition.
func (c *Conversation) Apply(t Transition) {
	if t.Mode != "" {
		c.state.Mode = t.Mode
	}
	if t.ClearDraft {
		c.state.Draft = nil
	}
	if t.Draft != nil {
		d := *t.Draft
		c.state.Draft = &d
	}
	if t.Booking != nil {
		b := *t.Booking
		c.state.LatestBooking = &b
	}
}

func (c *Conversation) SessionID() string { return c.state.SessionID }
func (c *Conversation) Summary() string   { return c.state.Summary }
func (c *Conversation) Mode() Mode        { return c.state.Mode }

// Draft returns a copy of the booking draft, or an empty draft.
func (c *Conversation) Draft() BookingDraft {
	if c.state.Draft == nil {
		return BookingDraft{}
	}
	return *c.state.Draft
}

// LatestBooking returns the last reservation made in this session, if any.
func (c *Conversation) LatestBooking() (BookingRef, bool) {
	if c.state.LatestBooking == nil {
		return BookingRef{}, false
	}
	return *c.state.LatestBooking, true
}

// Turns returns a copy of the history.
func (c *Conversation) Turns() []Turn {
	out := make([]Turn, len(c.state.Turns))
	copy(out, c.state.Turns)
	return out
}

// Snapshot returns a copy of the state suitable for persisting.
func (c *Conversation) Snapshot() State {
	s := c.state
	s.Turns = c.Turns()
	if c.state.Draft != nil {
		d := *c.state.Draft
		s.Draft = &d
	}
	if c.state.LatestBooking != nil {
		b := *c.state.LatestBooking
		s.LatestBooking = &b
	}
	return s
}
