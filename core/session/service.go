package session

import (
	"github.com/pkg/errors"

	"github.com/sinergiai/sinergi/core"
)

// Service is the session lifecycle: it owns all reads and writes of the
// Store. Writes only happen on login and logout; last write wins.
type Service struct {
	store Store
	log   core.Logger
}

func NewService(store Store, log core.Logger) *Service {
	return &Service{store: store, log: log}
}

func (svc *Service) Save(sess Session) error {
	if err := svc.store.Save(sess); err != nil {
		return errors.Wrap(err, "saving session")
	}
	return nil
}

// Current returns the stored session snapshot. A partial session (token
// present, profile missing or unparseable) is reported as absent; guards
// and the header derivation both see "anonymous".
func (svc *Service) Current() (Session, error) {
	sess, err := svc.store.Load()
	if err != nil {
		if err == ErrNoSession {
			return Session{}, err
		}
		return Session{}, errors.Wrap(err, "loading session")
	}
	if !sess.Present() {
		svc.log.Warn("partial session in store; treating as absent")
		return Session{}, ErrNoSession
	}
	return sess, nil
}

func (svc *Service) Clear() error {
	if err := svc.store.Clear(); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return nil
}

// AuthHeader derives the Authorization header value from the current store
// state: "Bearer <token>" when a session is present, "" otherwise. The
// empty value means "unauthenticated", never an error; requests still go
// out and the server rejects them.
func (svc *Service) AuthHeader() string {
	sess, err := svc.Current()
	if err != nil {
		return ""
	}
	return "Bearer " + sess.AccessToken
}

func (svc *Service) IsAuthenticated() bool {
	_, err := svc.Current()
	return err == nil
}

// Role returns the current profile's role, or "" when absent.
func (svc *Service) Role() string {
	sess, err := svc.Current()
	if err != nil {
		return ""
	}
	return sess.Role()
}
