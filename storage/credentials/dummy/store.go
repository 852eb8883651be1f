package dummycreds

import (
	"sync"

	"github.com/sinergiai/sinergi/core/session"
)

// Store is an in-memory session.Store for tests: same contract as the file
// store, no filesystem. The zero value is ready to use.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *session.User

	SaveErr  error // when set, Save fails with this error
	ClearErr error // when set, Clear fails with this error
}

var _ session.Store = (*Store)(nil) // interface compliance check

func New() *Store {
	return &Store{}
}

func (st *Store) Save(sess session.Session) error {
	if st.SaveErr != nil {
		return st.SaveErr
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.token = sess.AccessToken
	st.user = sess.User
	return nil
}

func (st *Store) Load() (session.Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.token == "" {
		return session.Session{}, session.ErrNoSession
	}
	sess := session.Session{AccessToken: st.token}
	if st.user != nil {
		usr := *st.user
		sess.User = &usr
	}
	return sess, nil
}

func (st *Store) Clear() error {
	if st.ClearErr != nil {
		return st.ClearErr
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.token = ""
	st.user = nil
	return nil
}

// SetPartial puts the store in the partial state: token present, profile
// missing.
func (st *Store) SetPartial(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.token = token
	st.user = nil
}
