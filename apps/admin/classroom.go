package main

import (
	"context"
	"fmt"

	"github.com/sinergiai/sinergi/client"
)

func (cli *commandLine) listKelas(ctx context.Context) error {
	kelas, err := cli.client.AllKelas(ctx)
	if err != nil {
		return err
	}
	for _, k := range kelas {
		fmt.Fprintf(cli.out, "%d\t%s\t%s\t%s\t%s\n", k.ID, k.NamaKelas, k.Jenjang, k.MataPelajaran, k.TahunAjaran)
	}
	return nil
}

func (cli *commandLine) addKelas(ctx context.Context, in client.NewKelasInput) error {
	if err := client.ValidateInput(in); err != nil {
		return err
	}
	res, err := cli.client.CreateKelas(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, res.Message)
	return nil
}

func (cli *commandLine) addSiswa(ctx context.Context, in client.SiswaInput) error {
	if err := client.ValidateInput(in); err != nil {
		return err
	}
	res, err := cli.client.CreateSiswa(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s (id %d)\n", res.Message, res.IDSiswa)
	return nil
}

func (cli *commandLine) enrolSiswa(ctx context.Context, kelasID, siswaID int) error {
	res, err := cli.client.EnrolSiswa(ctx, kelasID, siswaID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, res.Message)
	return nil
}

func (cli *commandLine) showAbsensi(ctx context.Context, kelasID int, tanggal string) error {
	records, err := cli.client.Absensi(ctx, kelasID, tanggal)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cli.out, "no attendance recorded")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(cli.out, "%s\t%s\n", rec.NamaSiswa, rec.Status)
	}
	return nil
}
