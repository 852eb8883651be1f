package main

import (
	"log"
	"os"

	"github.com/sinergiai/sinergi/client"
	"github.com/sinergiai/sinergi/core"
	"github.com/sinergiai/sinergi/core/session"
	logsvc "github.com/sinergiai/sinergi/services/logger"
	"github.com/sinergiai/sinergi/storage/credentials"
)

func main() {
	conf := core.Conf

	std := log.New(os.Stdout, conf.AppName+" ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.RollbarToken != "" {
		rollbarLogger := logsvc.NewRollbarLogger(std, conf)
		rollbarLogger.Enable(!conf.Debug && !conf.TestMode)
		logger = rollbarLogger
	} else {
		logger = logsvc.NewConsoleLogger(std)
	}

	sessions := session.NewService(credentials.NewFileStore(conf.CredentialsDir), logger)

	cli := commandLine{
		client:   client.NewClient(conf, sessions, logger),
		sessions: sessions,
		guard:    session.NewGuard(sessions),
		out:      os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
