package client

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sinergiai/sinergi/core"
	"github.com/sinergiai/sinergi/core/session"
	logsvc "github.com/sinergiai/sinergi/services/logger"
	dummycreds "github.com/sinergiai/sinergi/storage/credentials/dummy"
)

// newTestClient spins a fake backend and returns a gateway wired to it plus
// the fake credential store. routes registers the endpoints a test needs.
func newTestClient(t *testing.T, routes func(api *echo.Group)) (*Client, *dummycreds.Store) {
	e := echo.New()
	if routes != nil {
		routes(e.Group("/api"))
	}
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	st := dummycreds.New()
	svc := session.NewService(st, logsvc.NewConsoleLoggerMock())

	conf := &core.Config{}
	conf.API.BaseURL = srv.URL + "/api"
	return NewClient(conf, svc, logsvc.NewConsoleLoggerMock()), st
}

func seedSession(t *testing.T, st *dummycreds.Store, role string) session.Session {
	sess := session.Session{
		AccessToken: "T1",
		User:        &session.User{ID: 1, NamaLengkap: "Guru Satu", Email: "a@x.com", Role: role},
	}
	if err := st.Save(sess); err != nil {
		t.Fatalf("seedSession() failed: %v", err)
	}
	return sess
}
