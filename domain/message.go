// Package domain contains core concepts of the chat relay.
// This file defines Message values and related rules.
// Messages are immutable once delivered; only an authorized edit
// may replace the text, never the authorship.
package domain

// Message represents a chat message as stored in history.
type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds, client clock
	Media     string `json:"media,omitempty"`
	Audio     string `json:"audio,omitempty"`
}

// WithText returns a copy carrying the replacement text.
// Sender, ID and Timestamp are preserved.
func (m Message) WithText(text string) Message {
	m.Text = text
	return m
}
