package main

import (
	"context"
	"fmt"

	"github.com/sinergiai/sinergi/client"
)

func (cli *commandLine) generateRPP(ctx context.Context, prompt client.RPPPrompt) error {
	if err := client.ValidateInput(prompt); err != nil {
		return err
	}
	res, err := cli.client.GenerateRPP(ctx, prompt)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, res.RPP)
	return nil
}

func (cli *commandLine) generateSoal(ctx context.Context, prompt client.SoalPrompt) error {
	if err := client.ValidateInput(prompt); err != nil {
		return err
	}
	raw, err := cli.client.GenerateSoal(ctx, prompt)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s\n", raw)
	return nil
}

func (cli *commandLine) listRPP(ctx context.Context) error {
	rpps, err := cli.client.AllRPP(ctx)
	if err != nil {
		return err
	}
	for _, rpp := range rpps {
		fmt.Fprintf(cli.out, "%d\t%s\t%s\t%s\n", rpp.ID, rpp.Judul, rpp.NamaKelas, rpp.TanggalDibuat)
	}
	return nil
}

func (cli *commandLine) showRPP(ctx context.Context, id int) error {
	rpp, err := cli.client.RPPByID(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s (%s)\n\n%s\n", rpp.Judul, rpp.NamaKelas, rpp.KontenMarkdown)
	return nil
}

func (cli *commandLine) listSoal(ctx context.Context) error {
	soal, err := cli.client.AllSoal(ctx)
	if err != nil {
		return err
	}
	for _, s := range soal {
		fmt.Fprintf(cli.out, "%d\t%s\t%s\t%s\n", s.ID, s.Judul, s.JudulRPP, s.TanggalDibuat)
	}
	return nil
}

func (cli *commandLine) showSoal(ctx context.Context, id int) error {
	soal, err := cli.client.SoalByID(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s (dari %s)\n\n%s\n", soal.Judul, soal.JudulRPP, soal.KontenJSON)
	return nil
}

func (cli *commandLine) listUjian(ctx context.Context) error {
	ujian, err := cli.client.AllUjian(ctx)
	if err != nil {
		return err
	}
	for _, u := range ujian {
		fmt.Fprintf(cli.out, "%d\t%s\t%s\n", u.ID, u.Judul, u.TanggalDibuat)
	}
	return nil
}

func (cli *commandLine) showUjian(ctx context.Context, id int) error {
	ujian, err := cli.client.UjianByID(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s\n\n%s\n", ujian.Judul, ujian.KontenJSON)
	return nil
}

// examPDF fetches the stored exam and feeds it to the PDF generator.
func (cli *commandLine) examPDF(ctx context.Context, id int, dir string) error {
	ujian, err := cli.client.UjianByID(ctx, id)
	if err != nil {
		return err
	}
	in := client.ExamPDFInput{
		JudulUjian: ujian.Judul,
		Soal:       ujian.KontenJSON,
		Layout:     ujian.Layout,
	}
	path, err := cli.client.GenerateExamPDF(ctx, in, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "saved %s\n", path)
	return nil
}
