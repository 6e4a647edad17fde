package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comigor/portfolio-bot/internal/logger"
	"github.com/comigor/portfolio-bot/internal/reply"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	DefaultSessionTTL    = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Manager keeps the live sessions of the process. Sessions are never restored once
// closed or swept.
type Manager struct {
	selector *reply.Selector
	cfg      Config
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty registry whose sessions share selector and cfg.
func NewManager(selector *reply.Selector, cfg Config) *Manager {
	return &Manager{
		selector: selector,
		cfg:      cfg,
		now:      cfg.withDefaults().Now,
		sessions: make(map[string]*Session),
	}
}

// Create opens a new session seeded with the greeting.
func (m *Manager) Create(ctx context.Context) *Session {
	s := New(ctx, uuid.NewString(), m.selector, m.cfg)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	logger.L.Info("session opened", "session", s.ID())
	return s
}

// Get looks up a live session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close tears down and forgets a session.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	logger.L.Info("session closed", "session", id)
	return nil
}

// CloseAll tears down every live session.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than ttl and returns how many were removed.
// A session with an attached subscriber is still being viewed and is kept.
func (m *Manager) Sweep(now time.Time, ttl time.Duration) int {
	var expired []*Session

	m.mu.Lock()
	for id, s := range m.sessions {
		if s.Subscribers() == 0 && now.Sub(s.LastActive()) > ttl {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
		logger.L.Info("session expired", "session", s.ID())
	}
	return len(expired)
}

// StartSweeper runs Sweep every interval until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context, interval, ttl time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	go m.sweepLoop(ctx, interval, ttl)
}

func (m *Manager) sweepLoop(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(m.now(), ttl); n > 0 {
				logger.L.Debug("sweep finished", "expired", n, "live", m.Len())
			}
		}
	}
}
