package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/sinergiai/sinergi/core"
	"github.com/sinergiai/sinergi/core/session"
)

func TestClient_attachesBearerHeader(t *testing.T) {
	var gotAuth, gotReqID string
	c, st := newTestClient(t, func(api *echo.Group) {
		api.GET("/kelas", func(ctx echo.Context) error {
			gotAuth = ctx.Request().Header.Get("Authorization")
			gotReqID = ctx.Request().Header.Get("X-Request-Id")
			return ctx.JSON(http.StatusOK, []Kelas{})
		})
	})
	seedSession(t, st, session.RoleGuru)

	if _, err := c.AllKelas(context.Background()); err != nil {
		t.Fatalf("AllKelas() failed: %v", err)
	}
	assert.Equal(t, "Bearer T1", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_anonymousRequestStillSent(t *testing.T) {
	var called bool
	var hasAuth bool
	c, _ := newTestClient(t, func(api *echo.Group) {
		api.GET("/kelas", func(ctx echo.Context) error {
			called = true
			_, hasAuth = ctx.Request().Header["Authorization"]
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "Missing Authorization Header"})
		})
	})

	_, err := c.AllKelas(context.Background())
	assert.True(t, called, "request must reach the server; no client-side short-circuit")
	assert.False(t, hasAuth, "no header when anonymous")

	apiErr, ok := core.IsAPIError(err)
	if !ok {
		t.Fatalf("AllKelas() error = %v, want APIError", err)
	}
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Missing Authorization Header", apiErr.Message)
}

func TestClient_serverMessageWinsOverFallback(t *testing.T) {
	c, st := newTestClient(t, func(api *echo.Group) {
		api.DELETE("/siswa/:id", func(ctx echo.Context) error {
			return ctx.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		})
	})
	seedSession(t, st, session.RoleGuru)

	_, err := c.DeleteSiswa(context.Background(), 42)
	if err == nil {
		t.Fatal("DeleteSiswa() expected error, got nil")
	}
	assert.Equal(t, "not found", err.Error())
}

func TestClient_errorKeyWinsOverMessageKey(t *testing.T) {
	c, _ := newTestClient(t, func(api *echo.Group) {
		api.POST("/auth/login", func(ctx echo.Context) error {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"error": "Email atau password salah."})
		})
	})

	_, err := c.Login(context.Background(), Credentials{Email: "a@x.com", Password: "wrong-pwd"})
	if err == nil {
		t.Fatal("Login() expected error, got nil")
	}
	assert.Equal(t, "Email atau password salah.", err.Error())
}

func TestClient_unparseableErrorBodyFallsBack(t *testing.T) {
	c, st := newTestClient(t, func(api *echo.Group) {
		api.GET("/auth/users", func(ctx echo.Context) error {
			return ctx.HTML(http.StatusBadGateway, "<html>Bad Gateway</html>")
		})
	})
	seedSession(t, st, session.RoleAdmin)

	_, err := c.AllUsers(context.Background())
	if err == nil {
		t.Fatal("AllUsers() expected error, got nil")
	}
	apiErr, ok := core.IsAPIError(err)
	if !ok {
		t.Fatalf("AllUsers() error = %v, want APIError", err)
	}
	assert.Equal(t, "Gagal memuat pengguna.", apiErr.Message)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestClient_transportFailurePropagates(t *testing.T) {
	conf := &core.Config{}
	conf.API.BaseURL = "http://127.0.0.1:1/api" // nothing listens here
	c, _ := newTestClient(t, nil)
	c.baseURL = conf.API.BaseURL

	_, err := c.AllKelas(context.Background())
	if err == nil {
		t.Fatal("AllKelas() expected error, got nil")
	}
	if _, ok := core.IsAPIError(err); ok {
		t.Errorf("transport failure must not become an APIError: %v", err)
	}
	// the transport cause survives wrapping
	assert.Error(t, errors.Cause(err))
}

func TestClient_contextCancellation(t *testing.T) {
	c, _ := newTestClient(t, func(api *echo.Group) {
		api.GET("/kelas", func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, []Kelas{})
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.AllKelas(ctx); err == nil {
		t.Fatal("AllKelas() with cancelled context expected error, got nil")
	}
}
