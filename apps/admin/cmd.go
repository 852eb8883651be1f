package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/sinergiai/sinergi/client"
	"github.com/sinergiai/sinergi/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	client   *client.Client
	sessions *session.Service
	guard    *session.Guard
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL - log in; the password is prompted next")
	fmt.Fprintln(cli.out, "  logout - clear the stored session")
	fmt.Fprintln(cli.out, "  whoami - show the logged in account")
	fmt.Fprintln(cli.out, "  users - list accounts")
	fmt.Fprintln(cli.out, "  createuser -name NAME -email EMAIL -role ROLE [-sekolah ID] - create an account; the password is prompted next")
	fmt.Fprintln(cli.out, "  sekolah - list schools")
	fmt.Fprintln(cli.out, "  addsekolah -nama NAMA [-alamat ALAMAT] - register a school")
	fmt.Fprintln(cli.out, "  kelas - list classes")
	fmt.Fprintln(cli.out, "  addkelas -nama NAMA -jenjang JENJANG -mapel MAPEL -tahun TAHUN - create a class")
	fmt.Fprintln(cli.out, "  addsiswa -nama NAMA [-nisn NISN] [-nis NIS] - register a student")
	fmt.Fprintln(cli.out, "  enrolsiswa -kelas ID -siswa ID - enrol a student into a class")
	fmt.Fprintln(cli.out, "  absensi -kelas ID -tanggal YYYY-MM-DD - show attendance for a class")
	fmt.Fprintln(cli.out, "  generaterpp -mapel MAPEL -jenjang JENJANG -topik TOPIK -waktu WAKTU [-file PATH] - generate a lesson plan")
	fmt.Fprintln(cli.out, "  generatesoal -rpp ID -jenis JENIS -jumlah N -bloom LEVEL - generate a question set from a lesson plan")
	fmt.Fprintln(cli.out, "  rpp [-id ID] - list lesson plans, or show one")
	fmt.Fprintln(cli.out, "  soal [-id ID] - list question sets, or show one")
	fmt.Fprintln(cli.out, "  ujian [-id ID] - list exams, or show one")
	fmt.Fprintln(cli.out, "  exampdf -id ID [-dir DIR] - render an exam to PDF")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The account's email. The password will be prompted next.")

	createUserCmd := flag.NewFlagSet("createuser", flag.ExitOnError)
	createUserName := createUserCmd.String("name", "", "The account's full name.")
	createUserEmail := createUserCmd.String("email", "", "The account's email.")
	createUserRole := createUserCmd.String("role", session.RoleGuru, "One of: Guru, Admin, Super User.")
	createUserSekolah := createUserCmd.Int("sekolah", 0, "The school the account belongs to.")

	addSekolahCmd := flag.NewFlagSet("addsekolah", flag.ExitOnError)
	addSekolahNama := addSekolahCmd.String("nama", "", "The school's name.")
	addSekolahAlamat := addSekolahCmd.String("alamat", "", "The school's address.")

	addKelasCmd := flag.NewFlagSet("addkelas", flag.ExitOnError)
	addKelasNama := addKelasCmd.String("nama", "", "The class name.")
	addKelasJenjang := addKelasCmd.String("jenjang", "", "The school level (SD, SMP, SMA).")
	addKelasMapel := addKelasCmd.String("mapel", "", "The subject taught.")
	addKelasTahun := addKelasCmd.String("tahun", "", "The school year, e.g. 2025/2026.")

	addSiswaCmd := flag.NewFlagSet("addsiswa", flag.ExitOnError)
	addSiswaNama := addSiswaCmd.String("nama", "", "The student's full name.")
	addSiswaNISN := addSiswaCmd.String("nisn", "", "The national student number.")
	addSiswaNIS := addSiswaCmd.String("nis", "", "The school-issued student number.")

	enrolSiswaCmd := flag.NewFlagSet("enrolsiswa", flag.ExitOnError)
	enrolSiswaKelas := enrolSiswaCmd.Int("kelas", 0, "The class id.")
	enrolSiswaSiswa := enrolSiswaCmd.Int("siswa", 0, "The student id.")

	generateRPPCmd := flag.NewFlagSet("generaterpp", flag.ExitOnError)
	generateRPPMapel := generateRPPCmd.String("mapel", "", "The subject.")
	generateRPPJenjang := generateRPPCmd.String("jenjang", "", "The school level (SD, SMP, SMA).")
	generateRPPTopik := generateRPPCmd.String("topik", "", "The lesson topic.")
	generateRPPWaktu := generateRPPCmd.String("waktu", "", "The time allocation, e.g. 2x45 menit.")
	generateRPPFile := generateRPPCmd.String("file", "", "Optional reference material (pdf, docx or txt).")

	generateSoalCmd := flag.NewFlagSet("generatesoal", flag.ExitOnError)
	generateSoalRPP := generateSoalCmd.Int("rpp", 0, "The lesson plan to build questions from.")
	generateSoalJenis := generateSoalCmd.String("jenis", "", "The question type, e.g. pilihan_ganda.")
	generateSoalJumlah := generateSoalCmd.Int("jumlah", 0, "How many questions.")
	generateSoalBloom := generateSoalCmd.String("bloom", "", "Bloom taxonomy level, e.g. C3.")

	absensiCmd := flag.NewFlagSet("absensi", flag.ExitOnError)
	absensiKelas := absensiCmd.Int("kelas", 0, "The class id.")
	absensiTanggal := absensiCmd.String("tanggal", "", "The date, YYYY-MM-DD.")

	rppCmd := flag.NewFlagSet("rpp", flag.ExitOnError)
	rppID := rppCmd.Int("id", 0, "Show this lesson plan instead of listing.")

	soalCmd := flag.NewFlagSet("soal", flag.ExitOnError)
	soalID := soalCmd.Int("id", 0, "Show this question set instead of listing.")

	ujianCmd := flag.NewFlagSet("ujian", flag.ExitOnError)
	ujianID := ujianCmd.Int("id", 0, "Show this exam instead of listing.")

	examPDFCmd := flag.NewFlagSet("exampdf", flag.ExitOnError)
	examPDFID := examPDFCmd.Int("id", 0, "The exam to render.")
	examPDFDir := examPDFCmd.String("dir", ".", "Where to save the PDF.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(ctx, *loginEmail, pwd)
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "users":
		if err := cli.guard.Check(session.AdminRoles...); err != nil {
			return err
		}
		return cli.listUsers(ctx)
	case "createuser":
		if err := cli.guard.Check(session.AdminRoles...); err != nil {
			return err
		}
		if err := createUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *createUserName == "" || *createUserEmail == "" {
			createUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		var sekolahID *int
		if *createUserSekolah > 0 {
			sekolahID = createUserSekolah
		}
		return cli.createUser(ctx, client.NewUserInput{
			NamaLengkap: *createUserName,
			Email:       *createUserEmail,
			Password:    pwd,
			Role:        *createUserRole,
			SekolahID:   sekolahID,
		})
	case "sekolah":
		return cli.listSekolah(ctx)
	case "addsekolah":
		if err := cli.guard.Check(session.RoleSuperUser); err != nil {
			return err
		}
		if err := addSekolahCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addSekolahNama == "" {
			addSekolahCmd.Usage()
			return errHelp
		}
		return cli.addSekolah(ctx, client.NewSekolahInput{NamaSekolah: *addSekolahNama, Alamat: *addSekolahAlamat})
	case "kelas":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		return cli.listKelas(ctx)
	case "addkelas":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := addKelasCmd.Parse(args[2:]); err != nil {
			return err
		}
		in := client.NewKelasInput{
			NamaKelas:     *addKelasNama,
			Jenjang:       *addKelasJenjang,
			MataPelajaran: *addKelasMapel,
			TahunAjaran:   *addKelasTahun,
		}
		if in.NamaKelas == "" || in.Jenjang == "" || in.MataPelajaran == "" || in.TahunAjaran == "" {
			addKelasCmd.Usage()
			return errHelp
		}
		return cli.addKelas(ctx, in)
	case "addsiswa":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := addSiswaCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addSiswaNama == "" {
			addSiswaCmd.Usage()
			return errHelp
		}
		return cli.addSiswa(ctx, client.SiswaInput{
			NamaLengkap: *addSiswaNama,
			NISN:        *addSiswaNISN,
			NIS:         *addSiswaNIS,
		})
	case "enrolsiswa":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := enrolSiswaCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *enrolSiswaKelas == 0 || *enrolSiswaSiswa == 0 {
			enrolSiswaCmd.Usage()
			return errHelp
		}
		return cli.enrolSiswa(ctx, *enrolSiswaKelas, *enrolSiswaSiswa)
	case "generaterpp":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := generateRPPCmd.Parse(args[2:]); err != nil {
			return err
		}
		prompt := client.RPPPrompt{
			Mapel:        *generateRPPMapel,
			Jenjang:      *generateRPPJenjang,
			Topik:        *generateRPPTopik,
			AlokasiWaktu: *generateRPPWaktu,
			File:         *generateRPPFile,
		}
		if prompt.Mapel == "" || prompt.Jenjang == "" || prompt.Topik == "" || prompt.AlokasiWaktu == "" {
			generateRPPCmd.Usage()
			return errHelp
		}
		return cli.generateRPP(ctx, prompt)
	case "generatesoal":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := generateSoalCmd.Parse(args[2:]); err != nil {
			return err
		}
		prompt := client.SoalPrompt{
			RPPID:               *generateSoalRPP,
			JenisSoal:           *generateSoalJenis,
			JumlahSoal:          *generateSoalJumlah,
			TaksonomiBloomLevel: *generateSoalBloom,
		}
		if prompt.RPPID == 0 || prompt.JenisSoal == "" || prompt.JumlahSoal == 0 || prompt.TaksonomiBloomLevel == "" {
			generateSoalCmd.Usage()
			return errHelp
		}
		return cli.generateSoal(ctx, prompt)
	case "absensi":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := absensiCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *absensiKelas == 0 {
			absensiCmd.Usage()
			return errHelp
		}
		return cli.showAbsensi(ctx, *absensiKelas, *absensiTanggal)
	case "rpp":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := rppCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *rppID > 0 {
			return cli.showRPP(ctx, *rppID)
		}
		return cli.listRPP(ctx)
	case "soal":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := soalCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *soalID > 0 {
			return cli.showSoal(ctx, *soalID)
		}
		return cli.listSoal(ctx)
	case "ujian":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := ujianCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *ujianID > 0 {
			return cli.showUjian(ctx, *ujianID)
		}
		return cli.listUjian(ctx)
	case "exampdf":
		if err := cli.guard.Check(session.AllRoles...); err != nil {
			return err
		}
		if err := examPDFCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *examPDFID == 0 {
			examPDFCmd.Usage()
			return errHelp
		}
		return cli.examPDF(ctx, *examPDFID, *examPDFDir)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
