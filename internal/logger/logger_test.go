package logger

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("DEBUG")
	require.Equal(t, slog.LevelDebug, Level())

	SetLevel("warning")
	require.Equal(t, slog.LevelWarn, Level())

	SetLevel("nonsense")
	require.Equal(t, slog.LevelInfo, Level())
}

func TestUseWriter(t *testing.T) {
	t.Cleanup(func() { UseWriter(os.Stdout) })

	var buf bytes.Buffer
	UseWriter(&buf)
	L.Info("hello", "session", "abc")

	require.Contains(t, buf.String(), `"session":"abc"`)
}
