package session

import (
	"log"
	"reflect"
	"testing"
)

// memStore is a minimal in-package Store fake.
type memStore struct {
	token string
	user  *User
}

func (st *memStore) Save(sess Session) error {
	st.token = sess.AccessToken
	st.user = sess.User
	return nil
}

func (st *memStore) Load() (Session, error) {
	if st.token == "" {
		return Session{}, ErrNoSession
	}
	return Session{AccessToken: st.token, User: st.user}, nil
}

func (st *memStore) Clear() error {
	st.token = ""
	st.user = nil
	return nil
}

func newTestService() (*Service, *memStore) {
	st := new(memStore)
	return NewService(st, nopLogger{}), st
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(msg string, _ ...interface{}) {
	log.Fatal(msg)
}

func TestService_lifecycle(t *testing.T) {
	svc, _ := newTestService()

	// absent at start
	if _, err := svc.Current(); err != ErrNoSession {
		t.Fatalf("Current() error = %v, want ErrNoSession", err)
	}
	if hdr := svc.AuthHeader(); hdr != "" {
		t.Errorf("AuthHeader() = %q, want empty", hdr)
	}
	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated() = true, want false")
	}

	// login
	usr := &User{ID: 1, NamaLengkap: "Guru Satu", Email: "a@x.com", Role: RoleGuru}
	if err := svc.Save(Session{AccessToken: "T1", User: usr}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if hdr := svc.AuthHeader(); hdr != "Bearer T1" {
		t.Errorf("AuthHeader() = %q, want %q", hdr, "Bearer T1")
	}
	if role := svc.Role(); role != RoleGuru {
		t.Errorf("Role() = %q, want %q", role, RoleGuru)
	}

	// loading twice without a write yields identical snapshots
	sess1, err := svc.Current()
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	sess2, err := svc.Current()
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if !reflect.DeepEqual(sess1, sess2) {
		t.Errorf("Current() not idempotent: %+v != %+v", sess1, sess2)
	}

	// logout
	if err := svc.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if _, err := svc.Current(); err != ErrNoSession {
		t.Errorf("Current() after Clear() error = %v, want ErrNoSession", err)
	}
	if hdr := svc.AuthHeader(); hdr != "" {
		t.Errorf("AuthHeader() after Clear() = %q, want empty", hdr)
	}
}

func TestService_partialSessionIsAbsent(t *testing.T) {
	svc, st := newTestService()

	// token present, profile missing
	st.token = "T1"
	if _, err := svc.Current(); err != ErrNoSession {
		t.Errorf("Current() error = %v, want ErrNoSession", err)
	}
	if hdr := svc.AuthHeader(); hdr != "" {
		t.Errorf("AuthHeader() = %q, want empty", hdr)
	}
	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated() = true, want false")
	}
	if role := svc.Role(); role != "" {
		t.Errorf("Role() = %q, want empty", role)
	}
}
