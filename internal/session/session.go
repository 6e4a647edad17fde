// Package session runs the conversation loop of the portfolio bot: it appends user
// messages, waits a randomized typing delay and then appends a canned bot reply.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/qmuntal/stateless"

	"github.com/comigor/portfolio-bot/internal/logger"
	"github.com/comigor/portfolio-bot/internal/reply"
)

var (
	ErrReplyPending  = errors.New("a reply is already pending")
	ErrSessionClosed = errors.New("session closed")
)

const (
	DefaultDelayBase   = time.Second
	DefaultDelaySpread = time.Second
)

// Recorder receives every message appended to a session.
type Recorder interface {
	Record(ctx context.Context, sessionID string, msg Message) error
}

// Config tunes the dispatch loop. When DelayBase and DelaySpread are both zero the
// typing delay is DefaultDelayBase plus up to DefaultDelaySpread; a negative DelayBase
// with zero spread replies immediately.
type Config struct {
	DelayBase   time.Duration
	DelaySpread time.Duration
	Scheduler   Scheduler
	Recorder    Recorder
	Now         func() time.Time
}

func (c Config) withDefaults() Config {
	if c.DelayBase == 0 && c.DelaySpread == 0 {
		c.DelayBase = DefaultDelayBase
		c.DelaySpread = DefaultDelaySpread
	}
	if c.DelayBase < 0 {
		c.DelayBase = 0
	}
	if c.DelaySpread < 0 {
		c.DelaySpread = 0
	}
	if c.Scheduler == nil {
		c.Scheduler = ClockScheduler{}
	}
	if c.Now == nil {
		c.Now = func() time.Time { return time.Now().UTC() }
	}
	return c
}

// Session owns one conversation log and its pending-reply state.
type Session struct {
	id       string
	selector *reply.Selector
	cfg      Config

	// recordMu serializes draining of unrecorded so the Recorder sees messages in
	// log order. It is always taken before mu.
	recordMu   sync.Mutex
	unrecorded []Message

	mu         sync.Mutex
	fsm        *stateless.StateMachine
	messages   []Message
	pending    Task
	generation uint64
	lastActive time.Time
	subs       map[int]chan Event
	nextSub    int
}

// New starts a session that already holds the catalog greeting.
func New(ctx context.Context, id string, selector *reply.Selector, cfg Config) *Session {
	s := &Session{
		id:       id,
		selector: selector,
		cfg:      cfg.withDefaults(),
		subs:     make(map[int]chan Event),
	}
	s.fsm = newDispatchFSM(id, s.onTransition)

	s.mu.Lock()
	s.appendLocked(OriginBot, selector.Catalog().Greeting())
	s.mu.Unlock()

	s.flushRecords(ctx)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Submit appends a user message and schedules the bot's reply. Whitespace-only input is
// ignored and returns a nil message with no error.
func (s *Session) Submit(ctx context.Context, raw string) (*Message, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	s.mu.Lock()
	switch s.stateLocked() {
	case StateClosed:
		s.mu.Unlock()
		return nil, ErrSessionClosed
	case StateAwaitingReply:
		s.mu.Unlock()
		return nil, ErrReplyPending
	}

	msg := s.appendLocked(OriginUser, raw)
	if err := s.fsm.Fire(TriggerSubmit); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.generation++
	gen := s.generation
	delay := s.typingDelay()
	s.pending = s.cfg.Scheduler.AfterFunc(delay, func() { s.deliver(gen, raw) })
	s.mu.Unlock()

	logger.L.Debug("reply scheduled", "session", s.id, "delay", delay)
	s.flushRecords(context.WithoutCancel(ctx))
	return &msg, nil
}

// deliver runs when the typing delay elapses. A callback from a stale generation or a
// closed session does nothing.
func (s *Session) deliver(gen uint64, raw string) {
	s.mu.Lock()
	if gen != s.generation || s.stateLocked() != StateAwaitingReply {
		s.mu.Unlock()
		logger.L.Debug("dropping stale reply", "session", s.id)
		return
	}
	s.pending = nil

	category, text := s.selector.Respond(raw)
	s.appendLocked(OriginBot, text)
	if err := s.fsm.Fire(TriggerReplyDelivered); err != nil {
		logger.L.Error("failed to leave AwaitingReply", "session", s.id, "error", err)
	}
	s.mu.Unlock()

	logger.L.Info("reply delivered", "session", s.id, "category", category)
	s.flushRecords(context.Background())
}

// Close tears the session down. A pending reply is cancelled and never applied.
// Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stateLocked() == StateClosed {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.generation++
	if err := s.fsm.Fire(TriggerTeardown); err != nil {
		logger.L.Error("teardown failed", "session", s.id, "error", err)
	}
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
}

// Messages returns the conversation log in insertion order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// AwaitingReply reports whether a bot reply is pending.
func (s *Session) AwaitingReply() bool {
	return s.State() == StateAwaitingReply
}

// State returns the current dispatch state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// LastActive is the time of the most recent appended message.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Snapshot is a point-in-time view of a session for display surfaces.
type Snapshot struct {
	ID            string    `json:"id"`
	State         State     `json:"state"`
	AwaitingReply bool      `json:"awaitingReply"`
	Messages      []Message `json:"messages"`
}

// Snapshot captures the log and state atomically.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	st := s.stateLocked()
	return Snapshot{
		ID:            s.id,
		State:         st,
		AwaitingReply: st == StateAwaitingReply,
		Messages:      msgs,
	}
}

func (s *Session) stateLocked() State {
	st, _ := s.fsm.MustState().(State)
	return st
}

func (s *Session) appendLocked(origin Origin, text string) Message {
	msg := Message{
		ID:     newMessageID(),
		Text:   text,
		Origin: origin,
		SentAt: s.cfg.Now(),
	}
	s.messages = append(s.messages, msg)
	if s.cfg.Recorder != nil {
		s.unrecorded = append(s.unrecorded, msg)
	}
	s.lastActive = msg.SentAt
	s.publishLocked(Event{Type: EventMessage, Message: &msg, AwaitingReply: s.stateLocked() == StateAwaitingReply})
	return msg
}

func (s *Session) typingDelay() time.Duration {
	if s.cfg.DelaySpread == 0 {
		return s.cfg.DelayBase
	}
	jitter := s.selector.Source().Float64() * float64(s.cfg.DelaySpread)
	return s.cfg.DelayBase + time.Duration(jitter)
}

// onTransition runs inside fsm.Fire, which is always called with s.mu held.
func (s *Session) onTransition(from, to State) {
	if to == StateClosed {
		return
	}
	s.publishLocked(Event{Type: EventTyping, AwaitingReply: to == StateAwaitingReply})
}

// flushRecords hands queued messages to the Recorder in append order. Recorder I/O
// runs without holding mu.
func (s *Session) flushRecords(ctx context.Context) {
	if s.cfg.Recorder == nil {
		return
	}
	s.recordMu.Lock()
	defer s.recordMu.Unlock()

	for {
		s.mu.Lock()
		if len(s.unrecorded) == 0 {
			s.mu.Unlock()
			return
		}
		msg := s.unrecorded[0]
		s.unrecorded = s.unrecorded[1:]
		s.mu.Unlock()

		if err := s.cfg.Recorder.Record(ctx, s.id, msg); err != nil {
			logger.L.Warn("failed to record message", "session", s.id, "message", msg.ID, "error", err)
		}
	}
}
