package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/internal"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/repositories"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/runtime"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/runtime/workers"
)

// startRelayServer boots the full stack behind an httptest listener:
// supervisor, relay worker, upgrade handler and pumps.
func startRelayServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	config := internal.Config{
		HistoryLimit:         100,
		BufferSize:           256,
		ConnectionBufferSize: 64,
		MaxMessageSize:       1 << 20,
		RateLimitBurst:       100,
		RateLimitInterval:    time.Second,
		TelemetryInterval:    time.Minute,
	}

	relay := runtime.NewRelay(
		log,
		workers.NewSupervisor(log),
		runtime.NewRegistry(),
		repositories.NewHistoryRepository(config.HistoryLimit, log),
		nil,
		config.BufferSize,
		config.TelemetryInterval,
	)

	ctx, cancel := context.WithCancel(context.Background())
	relay.Start(ctx)

	handler := NewHandler(relay, log, config)
	server := httptest.NewServer(http.HandlerFunc(handler.ServeWS))

	t.Cleanup(func() {
		server.Close()
		relay.Stop()
		cancel()
	})
	return server
}

func dialRelay(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, frame map[string]any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(frame))
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal(raw, &frame))
	return frame
}

// readFrameOfType skips unrelated frames (rosters, typing) until the
// wanted type arrives or the read deadline trips.
func readFrameOfType(t *testing.T, conn *websocket.Conn, frameType string) map[string]any {
	t.Helper()
	for {
		frame := readFrame(t, conn)
		if frame["type"] == frameType {
			return frame
		}
	}
}

func TestWebSocket_ClaimThenChat(t *testing.T) {
	req := require.New(t)
	server := startRelayServer(t)

	// Given alice is connected and claimed
	alice := dialRelay(t, server)
	sendFrame(t, alice, map[string]any{"type": "set_pseudo", "pseudo": "alice"})

	// Then she receives the empty room, then the roster
	history := readFrame(t, alice)
	req.Equal("history", history["type"])
	req.Empty(history["messages"])

	roster := readFrame(t, alice)
	req.Equal("online_users", roster["type"])
	req.Equal([]any{"alice"}, roster["users"])

	// When bob joins and posts
	bob := dialRelay(t, server)
	sendFrame(t, bob, map[string]any{"type": "set_pseudo", "pseudo": "bob"})
	readFrameOfType(t, bob, "online_users")
	sendFrame(t, bob, map[string]any{"type": "message", "text": "hello", "id": "m1"})

	// Then both ends receive the server-confirmed copy
	for _, conn := range []*websocket.Conn{alice, bob} {
		message := readFrameOfType(t, conn, "message")
		req.Equal("bob", message["sender"])
		req.Equal("hello", message["text"])
		req.Equal("m1", message["id"])
	}
}

func TestWebSocket_FramesBeforeClaimAreDropped(t *testing.T) {
	req := require.New(t)
	server := startRelayServer(t)

	// Given a connection that speaks before claiming
	mallory := dialRelay(t, server)
	sendFrame(t, mallory, map[string]any{"type": "message", "text": "spam", "id": "m1"})
	sendFrame(t, mallory, map[string]any{"type": "set_pseudo", "pseudo": "mallory"})

	// Then the claim replays an empty room: the early frame was dropped,
	// not queued. Commands are handled in order by a single worker, so
	// the replay is authoritative.
	history := readFrame(t, mallory)
	req.Equal("history", history["type"])
	req.Empty(history["messages"])
}

func TestWebSocket_MalformedFrameKeepsConnectionOpen(t *testing.T) {
	req := require.New(t)
	server := startRelayServer(t)

	alice := dialRelay(t, server)

	// When a frame is not even JSON
	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte("{not json")))

	// Then the connection survives and the claim still works
	sendFrame(t, alice, map[string]any{"type": "set_pseudo", "pseudo": "alice"})
	history := readFrame(t, alice)
	req.Equal("history", history["type"])
}

func TestWebSocket_DisconnectFreesName(t *testing.T) {
	req := require.New(t)
	server := startRelayServer(t)

	// Given alice and bob are online
	alice := dialRelay(t, server)
	sendFrame(t, alice, map[string]any{"type": "set_pseudo", "pseudo": "alice"})
	readFrameOfType(t, alice, "online_users")

	bob := dialRelay(t, server)
	sendFrame(t, bob, map[string]any{"type": "set_pseudo", "pseudo": "bob"})
	readFrameOfType(t, bob, "online_users")

	// Alice consumes the grown roster before the departure
	roster := readFrameOfType(t, alice, "online_users")
	req.Equal([]any{"alice", "bob"}, roster["users"])

	// When bob's transport closes
	req.NoError(bob.Close())

	// Then alice sees the shrunk roster
	roster = readFrameOfType(t, alice, "online_users")
	req.Equal([]any{"alice"}, roster["users"])

	// And the name is claimable again
	bob2 := dialRelay(t, server)
	sendFrame(t, bob2, map[string]any{"type": "set_pseudo", "pseudo": "bob"})
	history := readFrame(t, bob2)
	req.Equal("history", history["type"])
}
