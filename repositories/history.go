package repositories

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/domain"
)

// DefaultHistoryLimit caps each scope when no explicit limit is configured.
const DefaultHistoryLimit = 100

// HistoryRepository is the bounded, append-only in-memory message log.
// The shared room and each private thread keep at most limit entries;
// the oldest entry is evicted first. All state is volatile: nothing
// survives a process restart.
type HistoryRepository struct {
	mu      sync.Mutex
	limit   int
	room    []domain.Message
	threads map[domain.ThreadKey][]domain.Message
	log     *slog.Logger
}

func NewHistoryRepository(limit int, log *slog.Logger) *HistoryRepository {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryRepository{
		limit:   limit,
		threads: make(map[domain.ThreadKey][]domain.Message),
		log:     log,
	}
}

// AppendRoom appends to the room log, evicting the oldest entry once
// the capacity is exceeded. Eviction preserves insertion order.
func (h *HistoryRepository) AppendRoom(message domain.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.room = h.appendBounded(h.room, message)
}

// SnapshotRoom returns the room log in insertion order, oldest first.
// The slice is a copy; callers may hold it across later mutations.
func (h *HistoryRepository) SnapshotRoom() []domain.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.Message(nil), h.room...)
}

// FindRoom locates a room message by its client-generated identifier.
func (h *HistoryRepository) FindRoom(id string) (domain.Message, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return find(h.room, id)
}

// EditRoom replaces the text of the identified room message in place,
// preserving authorship, and returns the updated message.
func (h *HistoryRepository) EditRoom(id, text string) (domain.Message, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return edit(h.room, id, text)
}

// RemoveRoom deletes the identified room message. Removing an id that
// is not present reports false and has no other effect.
func (h *HistoryRepository) RemoveRoom(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, removed := remove(h.room, id)
	h.room = room
	return removed
}

// ClearRoom unconditionally empties the room log.
func (h *HistoryRepository) ClearRoom() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.room = nil
}

// RoomSize reports the current room log length.
func (h *HistoryRepository) RoomSize() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.room)
}

// AppendThread appends to a private thread, with the same capacity
// bound and eviction rule as the room log.
func (h *HistoryRepository) AppendThread(key domain.ThreadKey, message domain.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.threads[key] = h.appendBounded(h.threads[key], message)
}

// SnapshotThread returns a private thread in insertion order.
func (h *HistoryRepository) SnapshotThread(key domain.ThreadKey) []domain.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.Message(nil), h.threads[key]...)
}

func (h *HistoryRepository) FindThread(key domain.ThreadKey, id string) (domain.Message, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return find(h.threads[key], id)
}

func (h *HistoryRepository) EditThread(key domain.ThreadKey, id, text string) (domain.Message, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return edit(h.threads[key], id, text)
}

// RemoveThread deletes a message from a private thread. An emptied
// thread is dropped entirely so dead pairs don't accumulate.
func (h *HistoryRepository) RemoveThread(key domain.ThreadKey, id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	thread, removed := remove(h.threads[key], id)
	if len(thread) == 0 {
		delete(h.threads, key)
	} else {
		h.threads[key] = thread
	}
	return removed
}

func (h *HistoryRepository) appendBounded(log []domain.Message, message domain.Message) []domain.Message {
	log = append(log, message)
	if len(log) > h.limit {
		evicted := log[0]
		log = log[1:]
		h.log.Debug(fmt.Sprintf("History capacity %d reached, evicting message %s", h.limit, evicted.ID))
	}
	return log
}

func find(log []domain.Message, id string) (domain.Message, bool) {
	for _, m := range log {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Message{}, false
}

func edit(log []domain.Message, id, text string) (domain.Message, bool) {
	for i, m := range log {
		if m.ID == id {
			log[i] = m.WithText(text)
			return log[i], true
		}
	}
	return domain.Message{}, false
}

func remove(log []domain.Message, id string) ([]domain.Message, bool) {
	for i, m := range log {
		if m.ID == id {
			return append(log[:i:i], log[i+1:]...), true
		}
	}
	return log, false
}
