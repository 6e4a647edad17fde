package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/comigor/portfolio-bot/internal/logger"
)

// slogFormatter routes chi request logs through logger.L so they share its JSON
// format, writer and level.
type slogFormatter struct{}

func (slogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &slogEntry{
		method:    r.Method,
		path:      r.URL.Path,
		remote:    r.RemoteAddr,
		requestID: middleware.GetReqID(r.Context()),
	}
}

type slogEntry struct {
	method    string
	path      string
	remote    string
	requestID string
}

func (e *slogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	logger.L.Info("http request",
		"method", e.method,
		"path", e.path,
		"status", status,
		"bytes", bytes,
		"elapsed", elapsed,
		"remote", e.remote,
		"request_id", e.requestID,
	)
}

func (e *slogEntry) Panic(v interface{}, stack []byte) {
	logger.L.Error("http handler panic",
		"method", e.method,
		"path", e.path,
		"request_id", e.requestID,
		"panic", v,
		"stack", string(stack),
	)
}
