package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sinergiai/sinergi/core/session"
)

// Register creates a self-service account (role Guru).
func (c *Client) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	res := new(RegisterResult)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/auth/register",
		body:     in,
		fallback: "Gagal registrasi.",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Login authenticates and, on success, stores the returned token and
// profile in the session store.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	res := new(LoginResult)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     creds,
		fallback: "Gagal login.",
	}, res)
	if err != nil {
		return nil, err
	}
	if err := c.session.Save(session.Session{AccessToken: res.AccessToken, User: res.User}); err != nil {
		return nil, err
	}
	return res, nil
}

// Logout clears the stored session. Purely local; the token itself is not
// revoked server-side.
func (c *Client) Logout() error {
	return c.session.Clear()
}

func (c *Client) AllUsers(ctx context.Context) ([]session.User, error) {
	var users []session.User
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     "/auth/users",
		auth:     true,
		fallback: "Gagal memuat pengguna.",
	}, &users)
	return users, err
}

func (c *Client) CreateUser(ctx context.Context, in NewUserInput) (*RegisterResult, error) {
	res := new(RegisterResult)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/auth/create-user",
		body:     in,
		auth:     true,
		fallback: "Gagal membuat pengguna.",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) UserByID(ctx context.Context, id int) (*session.User, error) {
	usr := new(session.User)
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/auth/users/%d", id),
		auth:     true,
		fallback: "Gagal memuat detail pengguna.",
	}, usr)
	if err != nil {
		return nil, err
	}
	return usr, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, in UpdateUserInput) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/auth/users/%d", id),
		body:     in,
		auth:     true,
		fallback: "Gagal memperbarui pengguna.",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/auth/users/%d", id),
		auth:     true,
		fallback: "Gagal menghapus pengguna.",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) AllSekolah(ctx context.Context) ([]Sekolah, error) {
	var sekolah []Sekolah
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     "/sekolah",
		auth:     true,
		fallback: "Gagal memuat daftar sekolah.",
	}, &sekolah)
	return sekolah, err
}

func (c *Client) CreateSekolah(ctx context.Context, in NewSekolahInput) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/sekolah",
		body:     in,
		auth:     true,
		fallback: "Gagal menambahkan sekolah baru.",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}
