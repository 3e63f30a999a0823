// Package websocket is the transport layer of the relay: it upgrades
// HTTP connections, runs one read and one write pump per session, and
// feeds decoded frames to the runtime as commands.
package websocket

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/protocol"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/runtime"
)

const (
	// writeWait bounds a single frame write.
	writeWait = 10 * time.Second
	// pongWait is how long a silent peer stays alive; pings go out a
	// little earlier so a healthy peer always answers in time.
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Session is one live WebSocket connection. It implements the runtime's
// Session contract: Deliver enqueues a pre-encoded envelope without
// blocking, and the write pump drains the queue.
type Session struct {
	id      string
	conn    *websocket.Conn
	relay   *runtime.Relay
	log     *slog.Logger
	send    chan []byte
	closed  chan struct{}
	once    sync.Once
	limiter *rate.Limiter
}

func NewSession(conn *websocket.Conn, relay *runtime.Relay, log *slog.Logger,
	sendBuffer int, rateBurst int, rateInterval time.Duration) *Session {
	// A zero burst would divide by zero below; one frame per interval is
	// the strictest limit a session can carry.
	if rateBurst < 1 {
		rateBurst = 1
	}
	return &Session{
		id:      uuid.NewString(),
		conn:    conn,
		relay:   relay,
		log:     log,
		send:    make(chan []byte, sendBuffer),
		closed:  make(chan struct{}),
		limiter: rate.NewLimiter(rate.Every(rateInterval/time.Duration(rateBurst)), rateBurst),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Deliver hands an envelope to the write pump. A full queue or a closed
// session reports an error immediately: fan-out to other recipients
// must never wait on this peer.
func (s *Session) Deliver(payload []byte) error {
	select {
	case <-s.closed:
		return fmt.Errorf("session %s is closed", s.id)
	case s.send <- payload:
		return nil
	default:
		return fmt.Errorf("send buffer full for session %s", s.id)
	}
}

// readPump consumes inbound frames until the transport closes, then
// tears the session down exactly once. Malformed frames and frames over
// the rate limit are dropped without closing the connection.
func (s *Session) readPump(maxMessageSize int64) {
	defer s.teardown()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				s.log.Warn("Unexpected WebSocket error", "session", s.id, "error", err)
			} else {
				s.log.Debug("Connection closed", "session", s.id)
			}
			return
		}

		if !s.limiter.Allow() {
			s.log.Warn("Rate limit exceeded, dropping frame", "session", s.id)
			continue
		}

		frame, err := protocol.DecodeInbound(raw)
		if err != nil {
			// Protocol errors are logged and dropped; the connection
			// stays open.
			s.log.Debug("Malformed frame dropped", "session", s.id, "error", err)
			continue
		}

		s.relay.Dispatch(s, frame)
	}
}

// writePump serializes all writes to the connection: queued envelopes
// and keepalive pings. It exits when the session is torn down or a
// write fails.
func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-s.closed:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case payload := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				s.log.Debug("Write failed", "session", s.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// teardown closes the session exactly once: the relay releases the
// identity (and announces the departure) and the write pump unblocks.
func (s *Session) teardown() {
	s.once.Do(func() {
		s.relay.Detach(s)
		close(s.closed)
		_ = s.conn.Close()
	})
}
