// Package domain contains core concepts of the chat relay.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// Participant is the pairing of a live connection with its claimed
// display name. At most one live Participant exists per name.
type Participant struct {
	SessionID string
	Name      string
}
