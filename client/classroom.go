package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) AllKelas(ctx context.Context) ([]Kelas, error) {
	var kelas []Kelas
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     "/kelas",
		auth:     true,
		fallback: "Gagal mengambil data kelas",
	}, &kelas)
	return kelas, err
}

func (c *Client) CreateKelas(ctx context.Context, in NewKelasInput) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/kelas",
		body:     in,
		auth:     true,
		fallback: "Gagal menambahkan kelas",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// KelasDetail returns the class with its enrolled students.
func (c *Client) KelasDetail(ctx context.Context, id int) (*Kelas, error) {
	kelas := new(Kelas)
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/kelas/%d", id),
		auth:     true,
		fallback: "Gagal mengambil detail kelas",
	}, kelas)
	if err != nil {
		return nil, err
	}
	return kelas, nil
}

func (c *Client) CreateSiswa(ctx context.Context, in SiswaInput) (*NewSiswaResult, error) {
	res := new(NewSiswaResult)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     "/siswa",
		body:     in,
		auth:     true,
		fallback: "Gagal menambah siswa",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// EnrolSiswa registers an existing student into a class.
func (c *Client) EnrolSiswa(ctx context.Context, kelasID, siswaID int) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     fmt.Sprintf("/kelas/%d/daftarkan_siswa", kelasID),
		body:     map[string]int{"id_siswa": siswaID},
		auth:     true,
		fallback: "Gagal mendaftarkan siswa",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) UpdateSiswa(ctx context.Context, id int, in SiswaInput) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/siswa/%d", id),
		body:     in,
		auth:     true,
		fallback: "Gagal memperbarui data siswa",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) DeleteSiswa(ctx context.Context, id int) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/siswa/%d", id),
		auth:     true,
		fallback: "Gagal menghapus siswa",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RecordAbsensi records attendance for a class; existing records for the
// same date are replaced server-side.
func (c *Client) RecordAbsensi(ctx context.Context, kelasID int, in AbsensiInput) (*StatusMessage, error) {
	res := new(StatusMessage)
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     fmt.Sprintf("/kelas/%d/absensi", kelasID),
		body:     in,
		auth:     true,
		fallback: "Gagal mencatat absensi",
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Absensi fetches a class's attendance for the given ISO date; an empty
// tanggal means today (server default).
func (c *Client) Absensi(ctx context.Context, kelasID int, tanggal string) ([]AbsensiRecord, error) {
	var query url.Values
	if tanggal != "" {
		query = url.Values{"tanggal": {tanggal}}
	}
	var records []AbsensiRecord
	err := c.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/kelas/%d/absensi", kelasID),
		query:    query,
		auth:     true,
		fallback: "Gagal mengambil data absensi",
	}, &records)
	return records, err
}
