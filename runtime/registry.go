package runtime

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/contract"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/errors"
)

var validate = validator.New()

type claimRequest struct {
	Name string `validate:"required,min=2"`
}

// Registry binds live sessions to claimed display names. It is the only
// component allowed to mutate the session<->name mappings.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]contract.Session // display name -> live session
	names  map[string]string           // session id -> display name
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]contract.Session),
		names:  make(map[string]string),
	}
}

// Claim binds a display name to a session. The name is trimmed, must be
// at least two characters with no control characters, must not be held
// by another live session (case-sensitive exact match), and a session
// authenticates at most once. On success it returns the names already
// online, sorted, so the caller can send the initial presence snapshot
// to the new participant.
func (r *Registry) Claim(session contract.Session, requestedName string) ([]string, error) {
	trimmed := strings.TrimSpace(requestedName)
	if err := validate.Struct(claimRequest{Name: trimmed}); err != nil {
		return nil, errors.ErrNameTooShort
	}
	// Control characters are rejected outright: thread keys separate the
	// two names with NUL, so a name embedding one could collide two
	// distinct pairs onto the same private thread.
	if strings.ContainsFunc(trimmed, unicode.IsControl) {
		return nil, errors.ErrNameInvalid
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, bound := r.names[session.ID()]; bound {
		return nil, errors.ErrAlreadyAuthenticated
	}
	if _, taken := r.byName[trimmed]; taken {
		return nil, errors.ErrNameTaken
	}

	others := lo.Keys(r.byName)
	sort.Strings(others)

	r.byName[trimmed] = session
	r.names[session.ID()] = trimmed
	return others, nil
}

// Release unbinds a session on transport close. It returns the freed
// name, or false if the session never completed authentication.
func (r *Registry) Release(sessionID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, bound := r.names[sessionID]
	if !bound {
		return "", false
	}
	delete(r.names, sessionID)
	delete(r.byName, name)
	return name, true
}

// NameOf resolves a session id to its bound display name.
func (r *Registry) NameOf(sessionID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, bound := r.names[sessionID]
	return name, bound
}

// Lookup resolves a display name to its live session, used for private
// addressing.
func (r *Registry) Lookup(name string) (contract.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, online := r.byName[name]
	return session, online
}

// OnlineNames returns the current roster, sorted for stable broadcasts.
func (r *Registry) OnlineNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.byName)
	sort.Strings(names)
	return names
}

// Sessions returns every authenticated session.
func (r *Registry) Sessions() []contract.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Values(r.byName)
}

// Count reports how many participants are authenticated.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
