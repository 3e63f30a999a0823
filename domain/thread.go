package domain

// ThreadKey identifies a private conversation by the unordered pair of
// participant names. The key is canonical: both orderings of the same
// two names produce the same key.
type ThreadKey string

// NewThreadKey builds the canonical key for a private thread.
// The NUL separator cannot appear in a display name, so the key is
// unambiguous regardless of the characters the names contain.
func NewThreadKey(a, b string) ThreadKey {
	if b < a {
		a, b = b, a
	}
	return ThreadKey(a + "\x00" + b)
}
