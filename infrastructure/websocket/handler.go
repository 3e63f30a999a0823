package websocket

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/internal"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/runtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The relay carries no cookie-based credentials, so cross-origin
	// upgrades grant nothing a same-origin client doesn't already have.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades HTTP requests and binds the resulting connections to
// the relay.
type Handler struct {
	relay  *runtime.Relay
	log    *slog.Logger
	config internal.Config
}

func NewHandler(relay *runtime.Relay, log *slog.Logger, config internal.Config) *Handler {
	return &Handler{relay: relay, log: log, config: config}
}

// ServeWS accepts one WebSocket connection and starts its pumps. The
// session stays unauthenticated until its first successful claim frame.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "WebSocket endpoint only accepts GET requests", http.StatusMethodNotAllowed)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	session := NewSession(conn, h.relay, h.log,
		h.config.ConnectionBufferSize,
		h.config.RateLimitBurst,
		h.config.RateLimitInterval)

	h.log.Debug("Connection accepted", "session", session.ID(), "remote", r.RemoteAddr)
	h.relay.Attach(session)

	go session.writePump()
	go session.readPump(h.config.MaxMessageSize)
}
