package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comigor/portfolio-bot/internal/catalog"
	"github.com/comigor/portfolio-bot/internal/reply"
	"github.com/comigor/portfolio-bot/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, Record{MessageID: "m1", SessionID: "a", Origin: "bot", Content: "hi", CreatedAt: at}))
	require.NoError(t, store.Save(ctx, Record{MessageID: "m2", SessionID: "b", Origin: "user", Content: "other", CreatedAt: at}))
	require.NoError(t, store.Save(ctx, Record{MessageID: "m3", SessionID: "a", Origin: "user", Content: "project?", CreatedAt: at.Add(time.Second)}))

	got, err := store.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "m1", got[0].MessageID)
	require.Equal(t, "m3", got[1].MessageID)
	require.Equal(t, "project?", got[1].Content)
	require.True(t, got[1].CreatedAt.Equal(at.Add(time.Second)))
}

func TestStoreAsSessionRecorder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	sel := reply.NewSelector(catalog.Default(), reply.NewSource(1))
	s := session.New(ctx, "sess-1", sel, session.Config{Recorder: store, DelayBase: time.Millisecond})

	_, err := s.Submit(ctx, "how can I reach you")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return !s.AwaitingReply() }, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		got, err := store.List(ctx, "sess-1")
		return err == nil && len(got) == 3
	}, time.Second, 5*time.Millisecond)

	got, err := store.List(ctx, "sess-1")
	require.NoError(t, err)
	want := s.Messages()
	for i := range want {
		require.Equal(t, want[i].ID, got[i].MessageID)
		require.Equal(t, string(want[i].Origin), got[i].Origin)
		require.Equal(t, want[i].Text, got[i].Content)
	}
}
