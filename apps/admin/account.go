package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sinergiai/sinergi/client"
	"github.com/sinergiai/sinergi/core"
	"github.com/sinergiai/sinergi/core/session"
)

func (cli *commandLine) login(ctx context.Context, email, pwd string) error {
	creds := client.Credentials{Email: core.CleanString(email, true /* lower */), Password: pwd}
	if err := client.ValidateInput(creds); err != nil {
		return err
	}
	res, err := cli.client.Login(ctx, creds)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "logged in as %s (%s)\n", res.User.NamaLengkap, res.User.Role)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.client.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "logged out")
	return nil
}

func (cli *commandLine) whoami() error {
	sess, err := cli.sessions.Current()
	if err == session.ErrNoSession {
		fmt.Fprintln(cli.out, "not logged in")
		return nil
	}
	if err != nil {
		return err
	}
	usr := sess.User
	fmt.Fprintf(cli.out, "%s <%s> - %s\n", usr.NamaLengkap, usr.Email, usr.Role)
	if claims, err := session.DecodeClaims(sess.AccessToken); err == nil && claims.ExpiresAt > 0 {
		fmt.Fprintf(cli.out, "token expires %s\n", time.Unix(claims.ExpiresAt, 0).Format(time.RFC1123))
	}
	return nil
}

func (cli *commandLine) listUsers(ctx context.Context) error {
	users, err := cli.client.AllUsers(ctx)
	if err != nil {
		return err
	}
	for _, usr := range users {
		fmt.Fprintf(cli.out, "%d\t%s <%s>\t%s\n", usr.ID, usr.NamaLengkap, usr.Email, usr.Role)
	}
	return nil
}

func (cli *commandLine) createUser(ctx context.Context, in client.NewUserInput) error {
	in.NamaLengkap = core.CleanString(in.NamaLengkap)
	in.Email = core.CleanString(in.Email, true /* lower */)
	if err := client.ValidateInput(in); err != nil {
		return err
	}
	res, err := cli.client.CreateUser(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, res.Message)
	return nil
}

func (cli *commandLine) listSekolah(ctx context.Context) error {
	schools, err := cli.client.AllSekolah(ctx)
	if err != nil {
		return err
	}
	for _, sch := range schools {
		fmt.Fprintf(cli.out, "%d\t%s\t%s\n", sch.ID, sch.NamaSekolah, sch.Alamat)
	}
	return nil
}

func (cli *commandLine) addSekolah(ctx context.Context, in client.NewSekolahInput) error {
	if err := client.ValidateInput(in); err != nil {
		return err
	}
	res, err := cli.client.CreateSekolah(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, res.Message)
	return nil
}
