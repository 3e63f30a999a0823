//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Session is the relay's handle on one live connection. Deliver hands a
// pre-encoded envelope to the connection's writer and must not block:
// a slow or closed peer reports failure instead of stalling fan-out
// to the remaining recipients.
type Session interface {
	ID() string
	Deliver(payload []byte) error
}

// IRegistry is the source of truth for who is online. It exclusively
// owns the session<->name bindings.
type IRegistry interface {
	Claim(session Session, requestedName string) ([]string, error)
	Release(sessionID string) (string, bool)
	NameOf(sessionID string) (string, bool)
	Lookup(name string) (Session, bool)
	OnlineNames() []string
	Sessions() []Session
	Count() int
}

// IHistory is the bounded in-memory message store, covering the shared
// room and the per-pair private threads.
type IHistory interface {
	AppendRoom(message domain.Message)
	SnapshotRoom() []domain.Message
	FindRoom(id string) (domain.Message, bool)
	EditRoom(id, text string) (domain.Message, bool)
	RemoveRoom(id string) bool
	ClearRoom()
	RoomSize() int

	AppendThread(key domain.ThreadKey, message domain.Message)
	SnapshotThread(key domain.ThreadKey) []domain.Message
	FindThread(key domain.ThreadKey, id string) (domain.Message, bool)
	EditThread(key domain.ThreadKey, id, text string) (domain.Message, bool)
	RemoveThread(key domain.ThreadKey, id string) bool
}
