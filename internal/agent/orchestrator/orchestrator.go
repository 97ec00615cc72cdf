package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/conversation/repository"
	"hotel-assistant/internal/router"
	pkgLog "hotel-assistant/pkg/log"
)

// ErrNotAccepted is returned when linking a booking that was not accepted.
var ErrNotAccepted = errors.New("booking was not accepted")

// Handle answers one utterance. It never fails: executor errors and panics
// become a generic reply, and the turn is still recorded.
func (o *Orchestrator) Handle(ctx context.Context, sessionID, utterance string) Reply {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ctx = pkgLog.WithSessionID(ctx, sessionID)

	s := o.acquire(ctx, sessionID)
	defer o.release(sessionID, s)
	s.mu.Lock()
	defer s.mu.Unlock()

	out, intent, degraded := o.dispatch(ctx, s.conv, utterance)

	s.conv.Apply(out.Transition)
	s.conv.Record(ctx, utterance, out.Reply)
	o.persist(ctx, s.conv)

	o.l.Infof(ctx, "%s: intent=%s mode=%s degraded=%t", LogPrefixHandle, intent, s.conv.Mode(), degraded)
	return Reply{
		SessionID: sessionID,
		Text:      out.Reply,
		Intent:    intent,
		Mode:      s.conv.Mode(),
		Degraded:  degraded,
	}
}

func (o *Orchestrator) dispatch(ctx context.Context, conv *conversation.Conversation, utterance string) (out agent.Output, intent router.Intent, degraded bool) {
	mode := conv.Mode()
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: panic: %v\n%s", LogPrefixHandle, r, debug.Stack())
			out = o.failure(mode)
		}
	}()

	if o.cfg.TurnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.TurnTimeout)
		defer cancel()
	}

	in := agent.Input{
		SessionID: conv.SessionID(),
		Utterance: utterance,
		Summary:   conv.Summary(),
		Mode:      mode,
		Draft:     conv.Draft(),
		Now:       o.now().In(o.cfg.Location),
	}
	if ref, ok := conv.LatestBooking(); ok {
		in.LatestBooking = &ref
	}

	var tool agent.Tool
	if mode == conversation.ModeAwaitingActivityConsent && o.followup != nil {
		tool = o.followup
		intent = tool.Intent()
	} else {
		routed := o.router.Classify(ctx, router.ClassifyInput{
			Utterance:         utterance,
			Summary:           in.Summary,
			BookingInProgress: mode == conversation.ModeCollectingDetails,
		})
		intent, degraded = routed.Intent, routed.Degraded

		var ok bool
		if tool, ok = o.registry.Get(intent); !ok {
			o.l.Errorf(ctx, "%s: no tool for intent %s", LogPrefixHandle, intent)
			return o.failure(mode), intent, degraded
		}
	}

	out, err := tool.Execute(ctx, in)
	if err != nil {
		o.l.Errorf(ctx, "%s: %s failed: %v", LogPrefixHandle, intent, err)
		return o.failure(mode), intent, degraded
	}
	if degraded {
		out.Reply = agent.MsgDegradedNotice + out.Reply
	}
	return out, intent, degraded
}

// failure is the generic reply. A failed follow-up turn still ends the follow-up.
func (o *Orchestrator) failure(mode conversation.Mode) agent.Output {
	out := agent.Output{Reply: agent.MsgGenericFailure}
	if mode == conversation.ModeAwaitingActivityConsent {
		out.Transition.Mode = conversation.ModeIdle
	}
	return out
}

// LinkBooking folds a booking accepted outside the chat into a conversation,
// so its next turn continues with the activity follow-up.
func (o *Orchestrator) LinkBooking(ctx context.Context, sessionID string, out booking.SubmitOutput) error {
	if out.State != booking.StateAccepted {
		return ErrNotAccepted
	}
	ctx = pkgLog.WithSessionID(ctx, sessionID)

	s := o.acquire(ctx, sessionID)
	defer o.release(sessionID, s)
	s.mu.Lock()
	defer s.mu.Unlock()

	res := out.Reservation
	confirm := o.cfg.Persona.Confirm(out)
	s.conv.Apply(confirm.Transition)
	s.conv.Record(ctx, fmt.Sprintf(formUtterance, res.RoomID,
		res.CheckIn.Format(booking.DateLayout), res.CheckOut.Format(booking.DateLayout)), confirm.Reply)
	o.persist(ctx, s.conv)

	o.l.Infof(ctx, "%s: linked %s", LogPrefixLinkBooking, res.BookingNumber)
	return nil
}

// Snapshot returns the state of a session, if it exists.
func (o *Orchestrator) Snapshot(ctx context.Context, sessionID string) (conversation.State, bool) {
	o.mu.Lock()
	s, ok := o.pinned[sessionID]
	if !ok {
		s, ok = o.sessions.Get(sessionID)
	}
	o.mu.Unlock()
	if !ok {
		if o.store == nil {
			return conversation.State{}, false
		}
		state, err := o.store.Get(ctx, sessionID)
		return state, err == nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.Snapshot(), true
}

// Reset forgets a session everywhere.
func (o *Orchestrator) Reset(ctx context.Context, sessionID string) {
	o.mu.Lock()
	o.sessions.Remove(sessionID)
	delete(o.pinned, sessionID)
	o.mu.Unlock()

	if o.store != nil {
		if err := o.store.Delete(ctx, sessionID); err != nil {
			o.l.Warnf(ctx, "%s: delete %s: %v", LogPrefixSession, sessionID, err)
		}
	}
}

// acquire returns the live session, restoring it from the store or starting
// a new one, and pins it until release. A pinned session outlives eviction
// from the LRU, so a turn in flight and the next request for the same id
// always share one mutex. The store is read outside the lock.
func (o *Orchestrator) acquire(ctx context.Context, sessionID string) *session {
	o.mu.Lock()
	if s, ok := o.lookup(sessionID); ok {
		o.mu.Unlock()
		return s
	}
	o.mu.Unlock()

	conv := o.load(ctx, sessionID)

	o.mu.Lock()
	defer o.mu.Unlock()
	if s, ok := o.lookup(sessionID); ok {
		return s
	}
	s := &session{conv: conv, refs: 1}
	o.sessions.Add(sessionID, s)
	o.pinned[sessionID] = s
	return s
}

// lookup finds a pinned or cached session, pins it and refreshes its TTL.
// o.mu must be held.
func (o *Orchestrator) lookup(sessionID string) (*session, bool) {
	s, ok := o.pinned[sessionID]
	if !ok {
		if s, ok = o.sessions.Get(sessionID); !ok {
			return nil, false
		}
		o.pinned[sessionID] = s
	}
	s.refs++
	o.sessions.Add(sessionID, s)
	return s, true
}

// release unpins a session once no turn holds it.
func (o *Orchestrator) release(sessionID string, s *session) {
	o.mu.Lock()
	defer o.mu.Unlock()
	s.refs--
	if s.refs == 0 && o.pinned[sessionID] == s {
		delete(o.pinned, sessionID)
	}
}

func (o *Orchestrator) load(ctx context.Context, sessionID string) *conversation.Conversation {
	if o.store != nil {
		state, err := o.store.Get(ctx, sessionID)
		if err == nil {
			return conversation.Restore(state, o.summarizer, o.l, o.cfg.SummaryTimeout)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			o.l.Warnf(ctx, "%s: restore %s: %v", LogPrefixSession, sessionID, err)
		}
	}
	return conversation.New(sessionID, o.summarizer, o.l, o.cfg.SummaryTimeout)
}

func (o *Orchestrator) persist(ctx context.Context, conv *conversation.Conversation) {
	if o.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.cfg.PersistTimeout)
	defer cancel()
	if err := o.store.Save(ctx, conv.Snapshot()); err != nil {
		o.l.Warnf(ctx, "%s: save %s: %v", LogPrefixSession, conv.SessionID(), err)
	}
}
