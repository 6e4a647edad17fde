package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/comigor/portfolio-bot/internal/logger"
	"github.com/comigor/portfolio-bot/internal/session"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsPingInterval = 54 * time.Second
	wsWriteTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsFrame is every server-to-client frame on the socket.
type wsFrame struct {
	Type          string            `json:"type"`
	Message       *session.Message  `json:"message,omitempty"`
	AwaitingReply bool              `json:"awaitingReply"`
	Session       *session.Snapshot `json:"session,omitempty"`
	Error         string            `json:"error,omitempty"`
}

// handleWebSocket streams session events to the client and accepts {"text": ...}
// frames as submissions. The socket is closed when the session closes.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.L.Warn("websocket upgrade failed", "session", s.ID(), "error", err)
		return
	}
	defer conn.Close()

	snapshot, events, unsubscribe := s.SubscribeWithSnapshot(32)
	defer unsubscribe()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	replies := make(chan wsFrame, 8)
	go writeLoop(ctx, conn, &snapshot, events, replies)

	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	logger.L.Debug("websocket connected", "session", s.ID())
	for {
		var in submitRequest
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logger.L.Warn("websocket read error", "session", s.ID(), "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		if _, err := s.Submit(ctx, in.Text); err != nil {
			select {
			case replies <- wsFrame{Type: "error", Error: err.Error()}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// writeLoop owns all data writes on conn.
func writeLoop(ctx context.Context, conn *websocket.Conn, snapshot *session.Snapshot, events <-chan session.Event, replies <-chan wsFrame) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	write := func(f wsFrame) bool {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(f); err != nil {
			logger.L.Debug("websocket write failed", "error", err)
			return false
		}
		return true
	}

	if !write(wsFrame{Type: "snapshot", Session: snapshot, AwaitingReply: snapshot.AwaitingReply}) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
				_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(wsWriteTimeout))
				conn.Close()
				return
			}
			if !write(wsFrame{Type: string(ev.Type), Message: ev.Message, AwaitingReply: ev.AwaitingReply}) {
				return
			}
		case f := <-replies:
			if !write(f) {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}
