package logsvc

import (
	"fmt"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
	"go.uber.org/zap"

	"github.com/trezcool/eneo/core"
)

// RollbarLogger reports to Rollbar (when enabled) and always logs locally through zap.
type RollbarLogger struct {
	std     *zap.Logger
	enabled bool
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *zap.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

// NewNopLogger returns a logger that neither prints nor reports. For tests.
func NewNopLogger() *RollbarLogger {
	return &RollbarLogger{std: zap.NewNop()}
}

func (l *RollbarLogger) Enable(enabled bool) {
	l.enabled = enabled
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}
func (l *RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		if arg != nil {
			newArgs = append(newArgs, arg)
		}
	}
	return newArgs
}

func (l *RollbarLogger) fields(args []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
		case error:
			fields = append(fields, zap.Error(v))
		case map[string]interface{}:
			for key, val := range v {
				fields = append(fields, zap.Any(key, val))
			}
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fields
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Debug(l.prepare(msg, args)...)
	}
	l.std.Debug(msg, l.fields(args)...)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Info(l.prepare(msg, args)...)
	}
	l.std.Info(msg, l.fields(args)...)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Warning(l.prepare(msg, args)...)
	}
	l.std.Warn(msg, l.fields(args)...)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Error(l.prepare(msg, args)...)
	}
	l.std.Error(msg, l.fields(args)...)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Critical(l.prepare(msg, args)...)
		rollbar.Wait()
	}
	l.std.Fatal(msg, l.fields(args)...)
}

// Sync flushes the local logger and waits for pending Rollbar reports.
func (l *RollbarLogger) Sync() error {
	if l.enabled {
		rollbar.Wait()
	}
	return l.std.Sync()
}
