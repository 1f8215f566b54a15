package main

import (
	"os"

	"github.com/trezcool/eneo/core"
	logsvc "github.com/trezcool/eneo/services/logger"
)

func main() {
	conf := core.NewConfig()

	logger := newLogger(conf)
	defer func() { _ = logger.Sync() }()

	cli := &commandLine{
		conf:   conf,
		logger: logger,
		out:    os.Stdout,
	}
	defer cli.close()

	if err := cli.run(os.Args); err != nil {
		logger.Error("command failed", err)
		cli.close()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(conf *core.Config) *logsvc.RollbarLogger {
	logger := logsvc.NewRollbarLogger(logsvc.NewStdLogger("ADMIN", conf.Debug), conf)
	logger.Enable(reportingEnabled(conf))
	return logger
}

// reportingEnabled reports whether failures are sent to Rollbar: outside DEBUG, when a token is configured.
func reportingEnabled(conf *core.Config) bool {
	return !conf.Debug && conf.RollbarToken != ""
}
