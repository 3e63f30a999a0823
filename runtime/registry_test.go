package runtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/errors"
)

type stubSession struct {
	id string
}

func (s *stubSession) ID() string { return s.id }

func (s *stubSession) Deliver(payload []byte) error { return nil }

func newStubSession() *stubSession {
	return &stubSession{id: uuid.NewString()}
}

func TestRegistry_Claim_FirstParticipant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	session := newStubSession()

	// Given nobody is online
	req.Zero(registry.Count())

	// When a session claims a name
	others, err := registry.Claim(session, "alice")

	// Then the room was empty and the binding is visible both ways
	req.NoError(err)
	req.Empty(others)
	req.Equal(1, registry.Count())

	name, bound := registry.NameOf(session.ID())
	req.True(bound)
	req.Equal("alice", name)

	resolved, online := registry.Lookup("alice")
	req.True(online)
	req.Equal(session.ID(), resolved.ID())
}

func TestRegistry_Claim_ReturnsSortedOthers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given three participants joined in non-alphabetical order
	_, err := registry.Claim(newStubSession(), "zoe")
	req.NoError(err)
	_, err = registry.Claim(newStubSession(), "bob")
	req.NoError(err)

	// When a fourth claims
	others, err := registry.Claim(newStubSession(), "alice")

	// Then the snapshot excludes the newcomer and is sorted
	req.NoError(err)
	req.Equal([]string{"bob", "zoe"}, others)
	req.Equal([]string{"alice", "bob", "zoe"}, registry.OnlineNames())
}

func TestRegistry_Claim_TrimsAndValidates(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When the name is padding around a valid pseudo
	_, err := registry.Claim(newStubSession(), "  alice  ")
	req.NoError(err)

	_, online := registry.Lookup("alice")
	req.True(online)

	// Then too-short names are rejected, whitespace included
	_, err = registry.Claim(newStubSession(), "a")
	req.ErrorIs(err, errors.ErrNameTooShort)

	_, err = registry.Claim(newStubSession(), "   ")
	req.ErrorIs(err, errors.ErrNameTooShort)
	req.Equal(1, registry.Count())
}

func TestRegistry_Claim_RejectsControlCharacters(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// A name embedding NUL could make two distinct pairs share one
	// private thread key ("alice\x00bob" + "carol" vs "alice" +
	// "bob\x00carol"), so it must never be claimable.
	for _, name := range []string{"bob\x00carol", "alice\x00bob", "bob\ncarol", "bob\tcarol"} {
		_, err := registry.Claim(newStubSession(), name)
		req.ErrorIs(err, errors.ErrNameInvalid, "name %q", name)
	}
	req.Zero(registry.Count())
}

func TestRegistry_Claim_NameAlreadyTaken(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given alice is online
	_, err := registry.Claim(newStubSession(), "alice")
	req.NoError(err)

	// When another session claims the same name
	_, err = registry.Claim(newStubSession(), "alice")

	// Then the claim is rejected, case-sensitive exact match only
	req.ErrorIs(err, errors.ErrNameTaken)

	_, err = registry.Claim(newStubSession(), "Alice")
	req.NoError(err)
	req.Equal(2, registry.Count())
}

func TestRegistry_Claim_SessionAuthenticatesOnce(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	session := newStubSession()

	// Given the session already holds a name
	_, err := registry.Claim(session, "alice")
	req.NoError(err)

	// When it claims again
	_, err = registry.Claim(session, "alice2")

	// Then the second claim is rejected and the first binding stands
	req.ErrorIs(err, errors.ErrAlreadyAuthenticated)
	name, _ := registry.NameOf(session.ID())
	req.Equal("alice", name)
}

func TestRegistry_Release_FreesNameForReuse(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	session := newStubSession()

	// Given alice is online
	_, err := registry.Claim(session, "alice")
	req.NoError(err)

	// When her session is released
	name, bound := registry.Release(session.ID())

	// Then the name is freed and immediately claimable again
	req.True(bound)
	req.Equal("alice", name)
	req.Zero(registry.Count())

	_, err = registry.Claim(newStubSession(), "alice")
	req.NoError(err)
}

func TestRegistry_Release_UnauthenticatedSession(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When a session that never claimed disconnects
	name, bound := registry.Release(uuid.NewString())

	// Then nothing was bound
	req.False(bound)
	req.Empty(name)
}

func TestRegistry_Sessions_ReturnsAllAuthenticated(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	s1 := newStubSession()
	s2 := newStubSession()

	_, err := registry.Claim(s1, "alice")
	req.NoError(err)
	_, err = registry.Claim(s2, "bob")
	req.NoError(err)

	sessions := registry.Sessions()
	req.Len(sessions, 2)
}
