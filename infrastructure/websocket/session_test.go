package websocket

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSession_ClampsZeroRateBurst(t *testing.T) {
	req := require.New(t)

	// A zero burst from the environment must not blow up the limiter
	var session *Session
	req.NotPanics(func() {
		session = NewSession(nil, nil, slog.Default(), 4, 0, time.Second)
	})

	// The clamped limiter still admits a frame, and delivery queues
	req.True(session.limiter.Allow())
	req.NoError(session.Deliver([]byte(`{"type":"history"}`)))
}
