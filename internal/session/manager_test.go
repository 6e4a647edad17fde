package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comigor/portfolio-bot/internal/catalog"
	"github.com/comigor/portfolio-bot/internal/reply"
)

func newTestManager(now *time.Time) (*Manager, *manualScheduler) {
	sched := &manualScheduler{}
	sel := reply.NewSelector(catalog.Default(), reply.NewSource(1))
	return NewManager(sel, Config{Scheduler: sched, Now: func() time.Time { return *now }}), sched
}

func TestManagerCreateGetClose(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m, _ := newTestManager(&now)

	s := m.Create(context.Background())
	got, err := m.Get(s.ID())
	require.NoError(t, err)
	require.Same(t, s, got)
	require.Equal(t, 1, m.Len())

	require.NoError(t, m.Close(s.ID()))
	require.Equal(t, StateClosed, s.State())

	_, err = m.Get(s.ID())
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.ErrorIs(t, m.Close(s.ID()), ErrSessionNotFound)
}

func TestManagerSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m, sched := newTestManager(&now)

	stale := m.Create(context.Background())
	now = now.Add(20 * time.Minute)
	fresh := m.Create(context.Background())
	_, err := fresh.Submit(context.Background(), "hi")
	require.NoError(t, err)

	now = now.Add(15 * time.Minute)
	require.Equal(t, 1, m.Sweep(now, 30*time.Minute))
	require.Equal(t, StateClosed, stale.State())

	_, err = m.Get(fresh.ID())
	require.NoError(t, err)

	sched.fire(0)
	require.Len(t, fresh.Messages(), 3)
}

func TestManagerCloseAll(t *testing.T) {
	now := time.Now()
	m, _ := newTestManager(&now)
	a := m.Create(context.Background())
	b := m.Create(context.Background())

	m.CloseAll()
	require.Zero(t, m.Len())
	require.Equal(t, StateClosed, a.State())
	require.Equal(t, StateClosed, b.State())
}

func TestManagerSweepKeepsWatchedSessions(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m, _ := newTestManager(&now)

	s := m.Create(context.Background())
	events, cancel := s.Subscribe(4)

	now = now.Add(31 * time.Minute)
	require.Zero(t, m.Sweep(now, 30*time.Minute))
	require.Equal(t, StateIdle, s.State())
	require.Equal(t, 1, s.Subscribers())
	select {
	case _, ok := <-events:
		require.True(t, ok, "subscriber channel closed by sweep")
	default:
	}

	cancel()
	require.Equal(t, 1, m.Sweep(now, 30*time.Minute))
	require.Equal(t, StateClosed, s.State())
}
