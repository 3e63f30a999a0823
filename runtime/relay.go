// Package runtime coordinates the relay: one single-writer worker owns
// every state mutation, a supervisor keeps the workers alive, and the
// transport submits commands through the Relay front.
package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/contract"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/moderation"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/protocol"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/runtime/workers"
)

// Relay is the server-side core behind the transport. Sessions never
// touch the registry or history directly: they submit commands and the
// relay worker applies them one at a time.
type Relay struct {
	log               *slog.Logger
	supervisor        contract.ISupervisor
	registry          contract.IRegistry
	history           contract.IHistory
	moderator         *moderation.Moderator
	commands          chan workers.Command
	telemetryInterval time.Duration
}

func NewRelay(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	registry contract.IRegistry,
	history contract.IHistory,
	moderator *moderation.Moderator,
	bufferSize int,
	telemetryInterval time.Duration,
) *Relay {
	return &Relay{
		log:               log,
		supervisor:        supervisor,
		registry:          registry,
		history:           history,
		moderator:         moderator,
		commands:          make(chan workers.Command, bufferSize),
		telemetryInterval: telemetryInterval,
	}
}

// Start launches the relay and telemetry workers under supervision.
// It returns immediately; the supervisor runs until ctx is canceled or
// Stop is called.
func (r *Relay) Start(ctx context.Context) {
	r.supervisor.Add(
		workers.NewRelayWorker(r.log, r.registry, r.history, r.moderator, r.commands),
		workers.NewTelemetryWorker(r.log, r.telemetryInterval, r.registry, r.history),
	)
	go r.supervisor.Run(ctx)
}

// Stop cancels the supervised workers.
func (r *Relay) Stop() {
	r.supervisor.Stop()
}

// Attach announces a freshly accepted connection. Lifecycle commands
// block instead of dropping: losing one would leak a registry binding.
func (r *Relay) Attach(session contract.Session) {
	r.commands <- workers.Command{Kind: workers.CommandAttach, Session: session}
}

// Detach announces a closed transport; the worker releases the identity
// and broadcasts the departure.
func (r *Relay) Detach(session contract.Session) {
	r.commands <- workers.Command{Kind: workers.CommandDetach, Session: session}
}

// Dispatch submits one decoded inbound frame. When the command buffer
// is saturated the frame is dropped and reported, so one flooding
// client cannot wedge the reader of another.
func (r *Relay) Dispatch(session contract.Session, frame protocol.Inbound) {
	select {
	case r.commands <- workers.Command{Kind: workers.CommandFrame, Session: session, Frame: frame}:
	default:
		r.log.Warn("Command buffer full, dropping frame",
			"session", session.ID(), "type", frame.Type)
	}
}

// Registry exposes the identity registry for read-side consumers.
func (r *Relay) Registry() contract.IRegistry {
	return r.registry
}

// History exposes the message store for read-side consumers.
func (r *Relay) History() contract.IHistory {
	return r.history
}
