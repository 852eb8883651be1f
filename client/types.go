package client

import (
	"encoding/json"

	"github.com/sinergiai/sinergi/core/session"
)

// ---- auth ----

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput creates a self-service account; the backend assigns the
// Guru role.
type RegisterInput struct {
	NamaLengkap string `json:"nama_lengkap" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
}

// NewUserInput creates an account with an explicit role (admin surface).
// Admin and Guru accounts must belong to a sekolah.
type NewUserInput struct {
	NamaLengkap string `json:"nama_lengkap" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required,knownrole"`
	SekolahID   *int   `json:"sekolah_id,omitempty"`
}

type UpdateUserInput struct {
	NamaLengkap string `json:"nama_lengkap,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Password    string `json:"password,omitempty"`
	Role        string `json:"role,omitempty" validate:"omitempty,knownrole"`
	SekolahID   *int   `json:"sekolah_id,omitempty"`
}

type LoginResult struct {
	Message     string        `json:"message"`
	AccessToken string        `json:"access_token"`
	User        *session.User `json:"user"`
}

type RegisterResult struct {
	Message string        `json:"message"`
	User    *session.User `json:"user"`
}

type Sekolah struct {
	ID          int    `json:"id"`
	NamaSekolah string `json:"nama_sekolah"`
	Alamat      string `json:"alamat,omitempty"`
}

type NewSekolahInput struct {
	NamaSekolah string `json:"nama_sekolah" validate:"required"`
	Alamat      string `json:"alamat,omitempty"`
}

// StatusMessage is the generic `{message}` acknowledgement most mutating
// endpoints return.
type StatusMessage struct {
	Message string `json:"message"`
}

// ---- classroom ----

type Kelas struct {
	ID            int     `json:"id"`
	NamaKelas     string  `json:"nama_kelas"`
	Jenjang       string  `json:"jenjang"`
	MataPelajaran string  `json:"mata_pelajaran"`
	TahunAjaran   string  `json:"tahun_ajaran"`
	Siswa         []Siswa `json:"siswa,omitempty"` // detail endpoint only
}

type NewKelasInput struct {
	NamaKelas     string `json:"nama_kelas" validate:"required"`
	Jenjang       string `json:"jenjang" validate:"required"`
	MataPelajaran string `json:"mata_pelajaran" validate:"required"`
	TahunAjaran   string `json:"tahun_ajaran" validate:"required"`
}

type Siswa struct {
	ID          int    `json:"id"`
	NamaLengkap string `json:"nama_lengkap"`
	NIS         string `json:"nis,omitempty"`
	NISN        string `json:"nisn,omitempty"`
}

type SiswaInput struct {
	NamaLengkap  string `json:"nama_lengkap" validate:"required"`
	NISN         string `json:"nisn,omitempty"`
	NIS          string `json:"nis,omitempty"`
	TempatLahir  string `json:"tempat_lahir,omitempty"`
	TanggalLahir string `json:"tanggal_lahir,omitempty"` // ISO date
	JenisKelamin string `json:"jenis_kelamin,omitempty"`
	Agama        string `json:"agama,omitempty"`
	Alamat       string `json:"alamat,omitempty"`
	NomorHP      string `json:"nomor_hp,omitempty"`
}

// NewSiswaResult acknowledges a created student with its assigned id.
type NewSiswaResult struct {
	Message string `json:"message"`
	IDSiswa int    `json:"id_siswa"`
}

type AbsensiEntry struct {
	IDSiswa int    `json:"id_siswa" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

type AbsensiInput struct {
	Tanggal   string         `json:"tanggal,omitempty"` // ISO date; server defaults to today
	Kehadiran []AbsensiEntry `json:"kehadiran" validate:"required,dive"`
}

type AbsensiRecord struct {
	NamaSiswa string `json:"nama_siswa"`
	Status    string `json:"status"`
}

// ---- AI tools ----

// RPPPrompt is the multipart form feeding the lesson-plan generator; File
// optionally attaches reference material (pdf, docx or txt).
type RPPPrompt struct {
	Mapel        string `validate:"required"`
	Jenjang      string `validate:"required"`
	Topik        string `validate:"required"`
	AlokasiWaktu string `validate:"required"`
	File         string // local path, optional
}

type GeneratedRPP struct {
	RPP string `json:"rpp"`
}

type NewRPPInput struct {
	Judul          string `json:"judul" validate:"required"`
	KontenMarkdown string `json:"konten_markdown" validate:"required"`
	KelasID        int    `json:"kelas_id" validate:"required"`
}

type RPPSummary struct {
	ID            int    `json:"id"`
	Judul         string `json:"judul"`
	TanggalDibuat string `json:"tanggal_dibuat"`
	NamaKelas     string `json:"nama_kelas"`
}

type RPPDetail struct {
	ID             int    `json:"id"`
	Judul          string `json:"judul"`
	KontenMarkdown string `json:"konten_markdown"`
	NamaKelas      string `json:"nama_kelas"`
}

type SoalPrompt struct {
	RPPID               int    `json:"rpp_id" validate:"required"`
	JenisSoal           string `json:"jenis_soal" validate:"required"`
	JumlahSoal          int    `json:"jumlah_soal" validate:"required"`
	TaksonomiBloomLevel string `json:"taksonomi_bloom_level" validate:"required"`
}

type NewSoalInput struct {
	Judul      string          `json:"judul" validate:"required"`
	KontenJSON json.RawMessage `json:"konten_json" validate:"required"`
	RPPID      int             `json:"rpp_id" validate:"required"`
}

type SoalSummary struct {
	ID            int    `json:"id"`
	Judul         string `json:"judul"`
	TanggalDibuat string `json:"tanggal_dibuat"`
	JudulRPP      string `json:"judul_rpp"`
}

type SoalDetail struct {
	ID         int             `json:"id"`
	Judul      string          `json:"judul"`
	KontenJSON json.RawMessage `json:"konten_json"`
	JudulRPP   string          `json:"judul_rpp"`
}

// ---- ujian ----

// UjianLayout mirrors the exam layout settings blob; zero values mean
// "backend default".
type UjianLayout struct {
	ShuffleQuestions  bool     `json:"shuffle_questions,omitempty"`
	ShuffleAnswers    bool     `json:"shuffle_answers,omitempty"`
	StudentInfoFields []string `json:"student_info_fields,omitempty"`
}

type Ujian struct {
	ID            int             `json:"id"`
	Judul         string          `json:"judul"`
	KontenJSON    json.RawMessage `json:"konten_json"`
	Layout        *UjianLayout    `json:"layout,omitempty"`
	TanggalDibuat string          `json:"tanggal_dibuat"`
}

type NewUjianInput struct {
	Judul      string          `json:"judul" validate:"required"`
	KontenJSON json.RawMessage `json:"konten_json" validate:"required"`
	Layout     *UjianLayout    `json:"layout,omitempty"`
}

// ExamPDFInput is the payload of the exam PDF generator; Soal is passed
// through as the page already assembled it.
type ExamPDFInput struct {
	JudulUjian string          `json:"judul_ujian" validate:"required"`
	Soal       json.RawMessage `json:"soal" validate:"required"`
	Layout     *UjianLayout    `json:"layout_settings,omitempty"`
}
