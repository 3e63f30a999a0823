package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/contract"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/domain"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/errors"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/moderation"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/protocol"
)

// CommandKind discriminates relay commands.
type CommandKind int

const (
	// CommandAttach announces a freshly accepted, still unauthenticated
	// connection.
	CommandAttach CommandKind = iota
	// CommandFrame carries one decoded inbound frame.
	CommandFrame
	// CommandDetach announces a closed transport.
	CommandDetach
)

// Command is one unit of work for the relay worker. Every inbound frame
// and every connect/disconnect becomes a Command, so the whole relay
// mutates its state from a single goroutine.
type Command struct {
	Kind    CommandKind
	Session contract.Session
	Frame   protocol.Inbound
}

// RelayWorker is the single-writer core of the relay: identity claims,
// message routing, moderation, and presence all run through its loop.
// One command is handled to completion before the next is started, so
// no operation ever observes another one half-applied.
type RelayWorker struct {
	log       *slog.Logger
	registry  contract.IRegistry
	history   contract.IHistory
	moderator *moderation.Moderator // nil disables the censor
	commands  chan Command
}

func NewRelayWorker(
	log *slog.Logger,
	registry contract.IRegistry,
	history contract.IHistory,
	moderator *moderation.Moderator,
	commands chan Command,
) *RelayWorker {
	return &RelayWorker{
		log:       log,
		registry:  registry,
		history:   history,
		moderator: moderator,
		commands:  commands,
	}
}

func (w *RelayWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return nil
		case cmd, ok := <-w.commands:
			if !ok {
				return nil
			}
			w.handle(cmd)
		}
	}
}

func (w *RelayWorker) handle(cmd Command) {
	switch cmd.Kind {
	case CommandAttach:
		w.log.Debug("Connection attached", "session", cmd.Session.ID())
	case CommandDetach:
		w.handleDetach(cmd.Session)
	case CommandFrame:
		w.handleFrame(cmd.Session, cmd.Frame)
	}
}

func (w *RelayWorker) handleFrame(session contract.Session, frame protocol.Inbound) {
	if frame.Type == protocol.TypeSetPseudo || frame.Type == protocol.TypeAuth {
		w.handleClaim(session, frame)
		return
	}

	// Every other operation requires a bound identity; frames from
	// unauthenticated connections are dropped.
	sender, bound := w.registry.NameOf(session.ID())
	if !bound {
		w.log.Debug("Dropping frame from unauthenticated connection",
			"session", session.ID(), "type", frame.Type)
		return
	}

	switch frame.Type {
	case protocol.TypeMessage:
		w.handleRoomMessage(session, sender, frame)
	case protocol.TypePrivateMessage:
		w.handlePrivateMessage(session, sender, frame)
	case protocol.TypeEdit:
		w.handleEdit(session, sender, frame)
	case protocol.TypeDeleteForAll:
		w.handleDeleteForAll(session, sender, frame)
	case protocol.TypeDeletePrivate:
		w.handleDeletePrivate(session, sender, frame)
	case protocol.TypeClearAll:
		w.handleClearAll(sender)
	case protocol.TypeTyping:
		w.broadcastExcept(session.ID(), protocol.NewTyping(sender, true))
	case protocol.TypeStopTyping:
		w.broadcastExcept(session.ID(), protocol.NewTyping(sender, false))
	case protocol.TypeGetPrivateHistory:
		w.handlePrivateHistory(session, sender, frame)
	default:
		w.log.Debug("Dropping unknown frame type", "type", frame.Type)
	}
}

// handleClaim admits or rejects an identity claim. Rejections are
// answered with an error envelope and the connection stays open, so the
// client may retry with another name.
func (w *RelayWorker) handleClaim(session contract.Session, frame protocol.Inbound) {
	others, err := w.registry.Claim(session, frame.DisplayName())
	if err != nil {
		w.send(session, protocol.NewError(err.Error()))
		return
	}

	name, _ := w.registry.NameOf(session.ID())
	w.log.Info(fmt.Sprintf("%s joined (%d already online)", name, len(others)))

	// Replay the room before any presence update so the newcomer
	// renders history first, the way the reference client expects.
	w.send(session, protocol.NewHistory(w.history.SnapshotRoom()))
	w.broadcastAll(protocol.NewOnlineUsers(w.registry.OnlineNames()))
}

func (w *RelayWorker) handleDetach(session contract.Session) {
	name, bound := w.registry.Release(session.ID())
	if !bound {
		w.log.Debug("Unauthenticated connection closed", "session", session.ID())
		return
	}
	w.log.Info(fmt.Sprintf("%s left", name))
	w.broadcastAll(protocol.NewOnlineUsers(w.registry.OnlineNames()))
}

func (w *RelayWorker) handleRoomMessage(session contract.Session, sender string, frame protocol.Inbound) {
	message, err := w.buildMessage(sender, frame)
	if err != nil {
		w.send(session, protocol.NewError(err.Error()))
		return
	}

	w.history.AppendRoom(message)
	// The sender receives its own copy: the optimistic UI reconciles
	// against the server-confirmed envelope.
	w.broadcastAll(protocol.NewRoomMessage(message))
}

func (w *RelayWorker) handlePrivateMessage(session contract.Session, sender string, frame protocol.Inbound) {
	if frame.To == "" || frame.To == sender {
		w.send(session, protocol.NewError("invalid private recipient"))
		return
	}

	message, err := w.buildMessage(sender, frame)
	if err != nil {
		w.send(session, protocol.NewError(err.Error()))
		return
	}

	w.history.AppendThread(domain.NewThreadKey(sender, frame.To), message)

	envelope := protocol.NewPrivateMessage(message, frame.To)
	w.send(session, envelope)
	if recipient, online := w.registry.Lookup(frame.To); online {
		w.send(recipient, envelope)
	}
	// An offline recipient is not an error: there is no mailbox, the
	// thread retains the message until capacity evicts it.
}

// buildMessage validates media payloads and assembles the stored record.
// The text passes through the censor when one is configured.
func (w *RelayWorker) buildMessage(sender string, frame protocol.Inbound) (domain.Message, error) {
	if frame.Media != "" {
		kind, err := domain.DetectMediaKind(frame.Media)
		if err != nil {
			return domain.Message{}, err
		}
		if kind != domain.KindImage && kind != domain.KindVideo {
			return domain.Message{}, errors.ErrUnsupportedMedia
		}
	}
	if frame.Audio != "" {
		kind, err := domain.DetectMediaKind(frame.Audio)
		if err != nil {
			return domain.Message{}, err
		}
		// Browser voice notes arrive as WebM, whose container signature
		// is shared with video, so both kinds are accepted here.
		if kind != domain.KindAudio && kind != domain.KindVideo {
			return domain.Message{}, errors.ErrUnsupportedMedia
		}
	}

	id := frame.ID
	if id == "" {
		id = uuid.NewString()
	}
	timestamp := frame.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	return domain.Message{
		ID:        id,
		Sender:    sender,
		Text:      w.censor(sender, frame.Text),
		Timestamp: timestamp,
		Media:     frame.Media,
		Audio:     frame.Audio,
	}, nil
}

func (w *RelayWorker) censor(sender, text string) string {
	if w.moderator == nil || text == "" {
		return text
	}
	sanitized, found := w.moderator.Censor(text)
	if len(found) > 0 {
		info := whatlanggo.Detect(text)
		w.log.Warn("Censored message",
			"author", sender,
			"words", found,
			"lang", info.Lang.Iso6391())
	}
	return sanitized
}

// handleEdit applies an authorized text replacement and re-notifies the
// original audience. Authorship is immutable: only the stored sender
// may edit, and the sender field survives the edit untouched.
func (w *RelayWorker) handleEdit(session contract.Session, requester string, frame protocol.Inbound) {
	// Replacement text goes through the censor like any send: an edit
	// must not be a side door around the filter.
	text := w.censor(requester, frame.Text)

	if frame.To == "" {
		stored, found := w.history.FindRoom(frame.ID)
		if !found {
			w.send(session, protocol.NewError(errors.ErrMessageNotFound.Error()))
			return
		}
		if stored.Sender != requester {
			w.send(session, protocol.NewError(errors.ErrNotAuthor.Error()))
			return
		}
		updated, _ := w.history.EditRoom(frame.ID, text)
		w.broadcastAll(protocol.NewEdit(updated.ID, updated.Text, ""))
		return
	}

	key := domain.NewThreadKey(requester, frame.To)
	stored, found := w.history.FindThread(key, frame.ID)
	if !found {
		w.send(session, protocol.NewError(errors.ErrMessageNotFound.Error()))
		return
	}
	if stored.Sender != requester {
		w.send(session, protocol.NewError(errors.ErrNotAuthor.Error()))
		return
	}
	updated, _ := w.history.EditThread(key, frame.ID, text)
	w.notifyThread(session, frame.To, protocol.NewEdit(updated.ID, updated.Text, frame.To))
}

func (w *RelayWorker) handleDeleteForAll(session contract.Session, requester string, frame protocol.Inbound) {
	stored, found := w.history.FindRoom(frame.ID)
	if !found {
		// Deleting twice is a no-op: the second request finds nothing
		// and nothing is re-broadcast.
		w.send(session, protocol.NewError(errors.ErrMessageNotFound.Error()))
		return
	}
	if stored.Sender != requester {
		w.send(session, protocol.NewError(errors.ErrNotAuthor.Error()))
		return
	}
	w.history.RemoveRoom(frame.ID)
	w.broadcastAll(protocol.NewDeleteMessage(frame.ID, ""))
}

func (w *RelayWorker) handleDeletePrivate(session contract.Session, requester string, frame protocol.Inbound) {
	if frame.To == "" {
		w.send(session, protocol.NewError("invalid private recipient"))
		return
	}
	key := domain.NewThreadKey(requester, frame.To)
	stored, found := w.history.FindThread(key, frame.ID)
	if !found {
		w.send(session, protocol.NewError(errors.ErrMessageNotFound.Error()))
		return
	}
	if stored.Sender != requester {
		w.send(session, protocol.NewError(errors.ErrNotAuthor.Error()))
		return
	}
	w.history.RemoveThread(key, frame.ID)
	w.notifyThread(session, frame.To, protocol.NewDeleteMessage(frame.ID, frame.To))
}

// handleClearAll empties the room and tells every connection to wipe
// its view. The operation is an explicit frame type, not a magic text
// command, so it is auditable like any other moderation action.
func (w *RelayWorker) handleClearAll(requester string) {
	w.log.Info(fmt.Sprintf("%s cleared the room history", requester))
	w.history.ClearRoom()
	w.broadcastAll(protocol.NewClearAll())
}

func (w *RelayWorker) handlePrivateHistory(session contract.Session, requester string, frame protocol.Inbound) {
	if frame.To == "" {
		w.send(session, protocol.NewError("invalid private recipient"))
		return
	}
	key := domain.NewThreadKey(requester, frame.To)
	w.send(session, protocol.NewPrivateHistory(frame.To, w.history.SnapshotThread(key)))
}

// notifyThread delivers an envelope to the two participants of a
// private thread: the requester and, when online, the other side.
func (w *RelayWorker) notifyThread(requester contract.Session, other string, envelope any) {
	w.send(requester, envelope)
	if session, online := w.registry.Lookup(other); online {
		w.send(session, envelope)
	}
}

func (w *RelayWorker) send(session contract.Session, envelope any) {
	payload, err := protocol.Encode(envelope)
	if err != nil {
		w.log.Error("Failed to encode envelope", "error", err)
		return
	}
	if err := session.Deliver(payload); err != nil {
		w.log.Warn("Failed to deliver envelope", "session", session.ID(), "error", err)
	}
}

// broadcastAll fans an envelope out to every authenticated session.
// Delivery is fire-and-forget per recipient: a slow or closed peer is
// reported and skipped, never waited on.
func (w *RelayWorker) broadcastAll(envelope any) {
	w.fanout(envelope, "")
}

func (w *RelayWorker) broadcastExcept(sessionID string, envelope any) {
	w.fanout(envelope, sessionID)
}

func (w *RelayWorker) fanout(envelope any, exceptID string) {
	payload, err := protocol.Encode(envelope)
	if err != nil {
		w.log.Error("Failed to encode envelope", "error", err)
		return
	}
	for _, session := range w.registry.Sessions() {
		if session.ID() == exceptID {
			continue
		}
		if err := session.Deliver(payload); err != nil {
			w.log.Warn("Failed to deliver envelope", "session", session.ID(), "error", err)
		}
	}
}
