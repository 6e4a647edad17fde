package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comigor/portfolio-bot/internal/logger"
)

func TestRequestLogsAreStructured(t *testing.T) {
	var buf bytes.Buffer
	logger.UseWriter(&buf)
	t.Cleanup(func() { logger.UseWriter(os.Stdout) })

	r, _, _ := setupRouter()
	rec := doJSON(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "http request", entry["msg"])
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/healthz", entry["path"])
	require.EqualValues(t, http.StatusOK, entry["status"])
	require.NotEmpty(t, entry["request_id"])
}
