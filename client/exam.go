package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) AllUjian(ctx context.Context) ([]Ujian, error) {
	var ujian []Ujian
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     "/ujian",
		auth:     true,
		fallback: "Gagal memuat daftar ujian.",
	}, &ujian)
	return ujian, err
}

func (c *Client) UjianByID(ctx context.Context, id int) (*Ujian, error) {
	ujian := new(Ujian)
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/ujian/%d", id),
		auth:     true,
		fallback: "Gagal mengambil detail ujian.",
	}, ujian)
	if err != nil {
		return nil, err
	}
	return ujian, nil
}

func (c *Client) SaveUjian(ctx context.Context, in NewUjianInput) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/ujian",
		body:     in,
		auth:     true,
		fallback: "Gagal menyimpan ujian.",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) DeleteUjian(ctx context.Context, id int) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/ujian/%d", id),
		auth:     true,
		fallback: "Gagal menghapus ujian.",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GenerateExamPDF renders an exam sheet server-side and saves the PDF under
// dir, named after the sanitized exam title. It returns the saved path.
func (c *Client) GenerateExamPDF(ctx context.Context, in ExamPDFInput, dir string) (string, error) {
	return c.download(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/generate-exam-pdf",
		body:     in,
		auth:     true,
		fallback: "Gagal membuat PDF ujian.",
	}, dir, in.JudulUjian, "pdf")
}
