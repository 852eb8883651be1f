package credentials

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sinergiai/sinergi/core/session"
)

func newTestStore(t *testing.T) (session.Store, string) {
	dir, err := ioutil.TempDir("", "sinergi-creds")
	if err != nil {
		t.Fatalf("newTestStore() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return NewFileStore(filepath.Join(dir, "session")), filepath.Join(dir, "session")
}

func TestFileStore_roundTrip(t *testing.T) {
	st, _ := newTestStore(t)

	if _, err := st.Load(); err != session.ErrNoSession {
		t.Fatalf("Load() on empty store error = %v, want ErrNoSession", err)
	}

	sekolahID := 2
	sess := session.Session{
		AccessToken: "T1",
		User: &session.User{
			ID:          1,
			NamaLengkap: "Guru Satu",
			Email:       "a@x.com",
			Role:        session.RoleGuru,
			SekolahID:   &sekolahID,
		},
	}
	if err := st.Save(sess); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(got, sess) {
		t.Errorf("Load() = %+v, want %+v", got, sess)
	}

	// identical on repeated loads
	again, err := st.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(again, got) {
		t.Errorf("Load() not idempotent: %+v != %+v", again, got)
	}

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if _, err := st.Load(); err != session.ErrNoSession {
		t.Errorf("Load() after Clear() error = %v, want ErrNoSession", err)
	}
	// clearing twice is a no-op
	if err := st.Clear(); err != nil {
		t.Errorf("second Clear() failed: %v", err)
	}
}

func TestFileStore_partialState(t *testing.T) {
	st, dir := newTestStore(t)

	if err := st.Save(session.Session{AccessToken: "T1", User: &session.User{ID: 1, Role: session.RoleGuru}}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// profile removed out-of-band: token survives, user comes back nil
	if err := os.Remove(filepath.Join(dir, "user")); err != nil {
		t.Fatalf("removing profile failed: %v", err)
	}
	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.AccessToken != "T1" || got.User != nil {
		t.Errorf("Load() = %+v, want token only", got)
	}

	// corrupt profile behaves the same
	if err := ioutil.WriteFile(filepath.Join(dir, "user"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing corrupt profile failed: %v", err)
	}
	got, err = st.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.AccessToken != "T1" || got.User != nil {
		t.Errorf("Load() = %+v, want token only", got)
	}
}

func TestFileStore_saveOverwrites(t *testing.T) {
	st, _ := newTestStore(t)

	first := session.Session{AccessToken: "T1", User: &session.User{ID: 1, Role: session.RoleGuru}}
	second := session.Session{AccessToken: "T2", User: &session.User{ID: 2, Role: session.RoleAdmin}}
	if err := st.Save(first); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := st.Save(second); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("Load() = %+v, want last write %+v", got, second)
	}
}
