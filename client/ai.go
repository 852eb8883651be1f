package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// GenerateRPP asks the AI backend for a lesson plan. The prompt goes up as
// a multipart form; when prompt.File is set the local file is attached as
// reference material.
func (c *Client) GenerateRPP(ctx context.Context, prompt RPPPrompt) (*GeneratedRPP, error) {
	res := new(GeneratedRPP)
	err := c.do(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/generate-rpp",
		form: func(w *multipart.Writer) error {
			fields := map[string]string{
				"mapel":         prompt.Mapel,
				"jenjang":       prompt.Jenjang,
				"topik":         prompt.Topik,
				"alokasi_waktu": prompt.AlokasiWaktu,
			}
			for name, value := range fields {
				if err := w.WriteField(name, value); err != nil {
					return err
				}
			}
			if prompt.File == "" {
				return nil
			}
			f, err := os.Open(prompt.File)
			if err != nil {
				return errors.Wrapf(err, "opening %s", prompt.File)
			}
			//goland:noinspection GoUnhandledErrorResult
			defer f.Close()
			part, err := w.CreateFormFile("file", filepath.Base(prompt.File))
			if err != nil {
				return err
			}
			_, err = io.Copy(part, f)
			return err
		},
		auth:     true,
		fallback: "Gagal membuat RPP dari AI",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) SaveRPP(ctx context.Context, in NewRPPInput) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/rpp",
		body:     in,
		auth:     true,
		fallback: "Gagal menyimpan RPP",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) AllRPP(ctx context.Context) ([]RPPSummary, error) {
	var rpps []RPPSummary
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     "/rpp",
		auth:     true,
		fallback: "Gagal mengambil daftar RPP",
	}, &rpps)
	return rpps, err
}

func (c *Client) RPPByID(ctx context.Context, id int) (*RPPDetail, error) {
	rpp := new(RPPDetail)
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/rpp/%d", id),
		auth:     true,
		fallback: "Gagal mengambil detail RPP",
	}, rpp)
	if err != nil {
		return nil, err
	}
	return rpp, nil
}

// GenerateSoal asks the AI backend for a question set built from a stored
// lesson plan. The AI payload comes back as-is.
func (c *Client) GenerateSoal(ctx context.Context, prompt SoalPrompt) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/generate-soal",
		body:     prompt,
		auth:     true,
		fallback: "Gagal membuat soal",
	}, &res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) SaveSoal(ctx context.Context, in NewSoalInput) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/soal",
		body:     in,
		auth:     true,
		fallback: "Gagal menyimpan soal",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) AllSoal(ctx context.Context) ([]SoalSummary, error) {
	var soal []SoalSummary
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     "/soal",
		auth:     true,
		fallback: "Gagal mengambil bank soal",
	}, &soal)
	return soal, err
}

func (c *Client) SoalByID(ctx context.Context, id int) (*SoalDetail, error) {
	soal := new(SoalDetail)
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/soal/%d", id),
		auth:     true,
		fallback: "Gagal mengambil detail soal",
	}, soal)
	if err != nil {
		return nil, err
	}
	return soal, nil
}

func (c *Client) DeleteSoal(ctx context.Context, id int) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/soal/%d", id),
		auth:     true,
		fallback: "Gagal menghapus set soal.",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}
