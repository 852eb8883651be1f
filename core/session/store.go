package session

import "errors"

var (
	// errors
	ErrNoSession = errors.New("no stored session")
)

// Store persists a Session across runs. The layout mirrors the two entries
// the backend hands out on login: the raw access token and the
// JSON-serialized user profile, kept as two separate writes.
type Store interface {
	// Save persists the token and the profile. The two writes are not
	// transactional; a crash in between can leave partial state, which
	// Load surfaces as-is.
	Save(sess Session) error
	// Load reads both entries. When the token is absent it returns
	// ErrNoSession. A missing or unparseable profile yields a Session
	// with a nil User while AccessToken may still be set.
	Load() (Session, error)
	// Clear removes both entries. Clearing an absent session is a no-op.
	Clear() error
}
