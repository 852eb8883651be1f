package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sinergiai/sinergi/core"
	"github.com/sinergiai/sinergi/core/session"
)

// apiRequest describes one backend call for the executor: every endpoint of
// the gateway is a thin declarative descriptor around do().
type apiRequest struct {
	method string
	path   string // relative to the API base URL
	query  url.Values
	body   interface{}                     // JSON-encoded when non-nil
	form   func(w *multipart.Writer) error // multipart body builder; wins over body
	auth   bool
	// fallback is the operation's failure message, used when the server
	// error body carries no text (or cannot be parsed).
	fallback string
}

// Client is the API gateway: it builds requests, attaches the bearer header
// from the session service, sends them and normalizes failures. It performs
// a single attempt per call; no retries, no de-duplication.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Service
	log     core.Logger
}

func NewClient(conf *core.Config, sess *session.Service, log core.Logger) *Client {
	return &Client{
		baseURL: conf.API.BaseURL,
		http:    &http.Client{Timeout: conf.API.Timeout},
		session: sess,
		log:     log,
	}
}

// do sends the request and, on success, decodes the JSON response into out
// (when non-nil). The payload is returned as the server sent it; no schema
// validation happens here.
func (c *Client) do(ctx context.Context, req apiRequest, out interface{}) error {
	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrapf(err, "reading %s %s response", req.method, req.path)
		c.log.Error("gateway: read failed", err)
		return err
	}
	if err := c.checkStatus(req, resp.StatusCode, data); err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			err = errors.Wrapf(err, "decoding %s %s response", req.method, req.path)
			c.log.Error("gateway: decode failed", err)
			return err
		}
	}
	return nil
}

// send builds and issues the HTTP call. Transport failures are logged then
// returned with their cause intact.
func (c *Client) send(ctx context.Context, req apiRequest) (*http.Response, error) {
	var body io.Reader
	var contentType string
	switch {
	case req.form != nil:
		buf := new(bytes.Buffer)
		w := multipart.NewWriter(buf)
		if err := req.form(w); err != nil {
			return nil, errors.Wrapf(err, "building %s form", req.path)
		}
		if err := w.Close(); err != nil {
			return nil, errors.Wrapf(err, "building %s form", req.path)
		}
		body = buf
		contentType = w.FormDataContentType()
	case req.body != nil:
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s %s request", req.method, req.path)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.url(req), body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s request", req.method, req.path)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("X-Request-Id", uuid.New().String())
	if req.auth {
		// an absent session still sends the request; the server rejects it
		if hdr := c.session.AuthHeader(); hdr != "" {
			httpReq.Header.Set("Authorization", hdr)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		err = errors.Wrapf(err, "%s %s", req.method, req.path)
		c.log.Error("gateway: transport failure", err)
		return nil, err
	}
	return resp, nil
}

func (c *Client) url(req apiRequest) string {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}
	return u
}

// errorBody is the shape of backend failure payloads; which key carries the
// text varies per endpoint.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// checkStatus normalizes a non-2xx response into a core.APIError whose
// message is the server-supplied text, or the operation's fallback when the
// body carries none or cannot be parsed.
func (c *Client) checkStatus(req apiRequest, status int, data []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}
	msg := req.fallback
	var payload errorBody
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			msg = payload.Error
		} else if payload.Message != "" {
			msg = payload.Message
		}
	}
	apiErr := core.NewAPIError(msg, status)
	c.log.Error("gateway: api failure", apiErr, map[string]interface{}{
		"method": req.method,
		"path":   req.path,
		"status": status,
	})
	return apiErr
}
