package credentials

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sinergiai/sinergi/core/session"
)

// Storage layout: two entries under one directory, mirroring the two keys
// of the original browser storage.
const (
	tokenFile = "access_token"
	userFile  = "user"
)

type fileStore struct {
	dir string
}

var _ session.Store = (*fileStore)(nil) // interface compliance check

// NewFileStore returns a Store keeping the token and profile as two files
// under dir. The directory is created on first Save.
func NewFileStore(dir string) session.Store {
	return &fileStore{dir: dir}
}

func (st *fileStore) Save(sess session.Session) error {
	if err := os.MkdirAll(st.dir, 0o700); err != nil {
		return errors.Wrapf(err, "creating %s", st.dir)
	}
	// two independent writes; not transactional
	if err := ioutil.WriteFile(st.path(tokenFile), []byte(sess.AccessToken), 0o600); err != nil {
		return errors.Wrap(err, "writing access token")
	}
	data, err := json.Marshal(sess.User)
	if err != nil {
		return errors.Wrap(err, "marshalling user profile")
	}
	if err := ioutil.WriteFile(st.path(userFile), data, 0o600); err != nil {
		return errors.Wrap(err, "writing user profile")
	}
	return nil
}

func (st *fileStore) Load() (session.Session, error) {
	token, err := ioutil.ReadFile(st.path(tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return session.Session{}, session.ErrNoSession
		}
		return session.Session{}, errors.Wrap(err, "reading access token")
	}
	sess := session.Session{AccessToken: string(token)}

	// an unreadable or unparseable profile yields a nil User; the session
	// service decides what a partial session means
	data, err := ioutil.ReadFile(st.path(userFile))
	if err != nil {
		return sess, nil
	}
	usr := new(session.User)
	if err := json.Unmarshal(data, usr); err != nil {
		return sess, nil
	}
	sess.User = usr
	return sess, nil
}

func (st *fileStore) Clear() error {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(st.path(name)); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "removing %s", name)
		}
	}
	return nil
}

func (st *fileStore) path(name string) string {
	return filepath.Join(st.dir, name)
}
