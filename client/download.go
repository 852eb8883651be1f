package client

import (
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sinergiai/sinergi/core"
)

// download runs a binary-response request and saves the body under dir as
// "<sanitized title>.<ext>", returning the saved path.
func (c *Client) download(ctx context.Context, req apiRequest, dir, title, ext string) (string, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return "", err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := ioutil.ReadAll(resp.Body)
		return "", c.checkStatus(req, resp.StatusCode, data)
	}

	path, err := saveToFile(resp.Body, dir, core.SanitizeFilename(title)+"."+ext)
	if err != nil {
		c.log.Error("gateway: saving download failed", err)
		return "", err
	}
	return path, nil
}

// saveToFile streams r into a temporary file and moves it in place once
// complete. The temporary handle is released even when the save step fails;
// a partial download never lands at the final path.
func saveToFile(r io.Reader, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating %s", dir)
	}
	tmp, err := ioutil.TempFile(dir, ".download-")
	if err != nil {
		return "", errors.Wrap(err, "creating temp file")
	}
	var moved bool
	defer func() {
		_ = tmp.Close()
		if !moved {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return "", errors.Wrap(err, "writing download")
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(err, "closing temp file")
	}
	path := filepath.Join(dir, filename)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", errors.Wrap(err, "moving download in place")
	}
	moved = true
	return path, nil
}
