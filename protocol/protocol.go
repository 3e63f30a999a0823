// Package protocol defines the JSON envelopes exchanged over the
// WebSocket transport. Inbound frames are decoded into a single
// Inbound struct discriminated by Type; outbound envelopes are small
// dedicated structs so each carries only its own fields.
package protocol

import (
	"encoding/json"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/domain"
)

// Inbound frame types accepted from clients.
const (
	TypeSetPseudo         = "set_pseudo"
	TypeAuth              = "auth" // legacy alias of set_pseudo
	TypeMessage           = "message"
	TypePrivateMessage    = "private_message"
	TypeEdit              = "edit"
	TypeDeleteForAll      = "delete_for_all"
	TypeDeletePrivate     = "delete_private"
	TypeClearAll          = "clear_all"
	TypeTyping            = "typing"
	TypeStopTyping        = "stop_typing"
	TypeGetPrivateHistory = "get_private_history"
)

// Outbound frame types sent to clients.
const (
	TypeHistory        = "history"
	TypeDeleteMessage  = "delete_message"
	TypeOnlineUsers    = "online_users"
	TypePrivateHistory = "private_history"
	TypeError          = "error"
)

// Inbound is the superset of every client frame. Unused fields stay at
// their zero value; the relay dispatches on Type.
type Inbound struct {
	Type      string `json:"type"`
	Pseudo    string `json:"pseudo,omitempty"`
	Name      string `json:"name,omitempty"` // legacy alias of pseudo
	Text      string `json:"text,omitempty"`
	ID        string `json:"id,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	To        string `json:"to,omitempty"`
	User      string `json:"user,omitempty"`
	Media     string `json:"media,omitempty"`
	Audio     string `json:"audio,omitempty"`

	// OriginalPrefix is the legacy display-string lookup key. Messages
	// are indexed by ID now; the field is decoded so old clients keep
	// parsing, then ignored.
	OriginalPrefix string `json:"originalPrefix,omitempty"`
}

// DecodeInbound parses a raw text frame.
func DecodeInbound(raw []byte) (Inbound, error) {
	var in Inbound
	err := json.Unmarshal(raw, &in)
	return in, err
}

// DisplayName coalesces the two historical spellings of the claim field.
func (in Inbound) DisplayName() string {
	if in.Pseudo != "" {
		return in.Pseudo
	}
	return in.Name
}

type History struct {
	Type     string           `json:"type"`
	Messages []domain.Message `json:"messages"`
}

func NewHistory(messages []domain.Message) History {
	return History{Type: TypeHistory, Messages: messages}
}

type RoomMessage struct {
	Type      string `json:"type"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Media     string `json:"media,omitempty"`
	Audio     string `json:"audio,omitempty"`
}

func NewRoomMessage(m domain.Message) RoomMessage {
	return RoomMessage{
		Type:      TypeMessage,
		Sender:    m.Sender,
		Text:      m.Text,
		ID:        m.ID,
		Timestamp: m.Timestamp,
		Media:     m.Media,
		Audio:     m.Audio,
	}
}

type PrivateMessage struct {
	Type      string `json:"type"`
	From      string `json:"from"`
	To        string `json:"to"`
	Text      string `json:"text"`
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Media     string `json:"media,omitempty"`
	Audio     string `json:"audio,omitempty"`
}

func NewPrivateMessage(m domain.Message, to string) PrivateMessage {
	return PrivateMessage{
		Type:      TypePrivateMessage,
		From:      m.Sender,
		To:        to,
		Text:      m.Text,
		ID:        m.ID,
		Timestamp: m.Timestamp,
		Media:     m.Media,
		Audio:     m.Audio,
	}
}

type Edit struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Text string `json:"text"`
	To   string `json:"to,omitempty"` // set for private-thread edits
}

func NewEdit(id, text, to string) Edit {
	return Edit{Type: TypeEdit, ID: id, Text: text, To: to}
}

type DeleteMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	To   string `json:"to,omitempty"`
}

func NewDeleteMessage(id, to string) DeleteMessage {
	return DeleteMessage{Type: TypeDeleteMessage, ID: id, To: to}
}

type ClearAll struct {
	Type string `json:"type"`
}

func NewClearAll() ClearAll {
	return ClearAll{Type: TypeClearAll}
}

type Typing struct {
	Type string `json:"type"`
	User string `json:"user"`
}

func NewTyping(user string, active bool) Typing {
	if active {
		return Typing{Type: TypeTyping, User: user}
	}
	return Typing{Type: TypeStopTyping, User: user}
}

type OnlineUsers struct {
	Type  string   `json:"type"`
	Users []string `json:"users"`
}

func NewOnlineUsers(users []string) OnlineUsers {
	return OnlineUsers{Type: TypeOnlineUsers, Users: users}
}

type PrivateHistory struct {
	Type     string           `json:"type"`
	With     string           `json:"with"`
	Messages []domain.Message `json:"messages"`
}

func NewPrivateHistory(with string, messages []domain.Message) PrivateHistory {
	return PrivateHistory{Type: TypePrivateHistory, With: with, Messages: messages}
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}

// Encode marshals an outbound envelope once, so fan-out reuses the
// same byte slice for every recipient.
func Encode(envelope any) ([]byte, error) {
	return json.Marshal(envelope)
}
