package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/internal"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/runtime"
)

// NewServer builds the HTTP server fronting the relay: the WebSocket
// endpoint, a health probe, and a read-only inspection endpoint.
func NewServer(config internal.Config, relay *runtime.Relay, log *slog.Logger) *http.Server {
	handler := NewHandler(relay, log, config)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler.ServeWS)
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/inspect", inspectHandler(relay))

	return &http.Server{
		Addr:        config.Addr(),
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("quickchat relay is running"))
}

// inspectHandler reports live relay state for debugging. Read-only and
// unauthenticated, same trust model as the chat itself.
func inspectHandler(relay *runtime.Relay) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"online":       relay.Registry().OnlineNames(),
			"room_history": relay.History().RoomSize(),
			"time":         time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// Shutdown drains the HTTP server without cutting active connections
// short of the timeout.
func Shutdown(server *http.Server, timeout time.Duration, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info("Shutting down HTTP server...")
	return server.Shutdown(ctx)
}
