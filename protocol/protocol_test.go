package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/domain"
)

func messageFixture(id, sender, text string) domain.Message {
	return domain.Message{ID: id, Sender: sender, Text: text, Timestamp: 1}
}

func TestDecodeInbound_DispatchesOnType(t *testing.T) {
	req := require.New(t)

	raw := []byte(`{"type":"private_message","to":"bob","text":"psst","id":"p1","timestamp":42}`)
	in, err := DecodeInbound(raw)
	req.NoError(err)
	req.Equal(TypePrivateMessage, in.Type)
	req.Equal("bob", in.To)
	req.Equal("psst", in.Text)
	req.EqualValues(42, in.Timestamp)
}

func TestDecodeInbound_LegacyFields(t *testing.T) {
	req := require.New(t)

	// Old clients identify with "name" and locate messages by prefix
	raw := []byte(`{"type":"auth","name":"alice","originalPrefix":"[10:02] alice:"}`)
	in, err := DecodeInbound(raw)
	req.NoError(err)
	req.Equal("alice", in.DisplayName())

	// The modern spelling wins when both are present
	in = Inbound{Pseudo: "new", Name: "old"}
	req.Equal("new", in.DisplayName())
}

func TestDecodeInbound_RejectsMalformedJSON(t *testing.T) {
	_, err := DecodeInbound([]byte("{not json"))
	require.Error(t, err)
}

func TestEncode_OmitsEmptyMediaFields(t *testing.T) {
	req := require.New(t)

	payload, err := Encode(NewRoomMessage(
		// A plain text message carries no media keys on the wire
		messageFixture("m1", "alice", "hello"),
	))
	req.NoError(err)

	var decoded map[string]any
	req.NoError(json.Unmarshal(payload, &decoded))
	req.Equal("message", decoded["type"])
	req.NotContains(decoded, "media")
	req.NotContains(decoded, "audio")
}
