package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewThreadKey_Canonical(t *testing.T) {
	req := require.New(t)

	// Both orderings of the same pair share one thread
	req.Equal(NewThreadKey("alice", "bob"), NewThreadKey("bob", "alice"))

	// Different pairs never collide, even with tricky names
	req.NotEqual(NewThreadKey("alice", "bob"), NewThreadKey("alice", "carol"))
	req.NotEqual(NewThreadKey("ab", "c"), NewThreadKey("a", "bc"))
}

func TestMessage_WithText_PreservesAuthorship(t *testing.T) {
	req := require.New(t)
	original := Message{ID: "m1", Sender: "alice", Text: "helo", Timestamp: 42}

	updated := original.WithText("hello")

	req.Equal("hello", updated.Text)
	req.Equal("m1", updated.ID)
	req.Equal("alice", updated.Sender)
	req.EqualValues(42, updated.Timestamp)
}
