package logsvc

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewStdLogger returns the named local logger: human readable in debug mode, JSON otherwise.
func NewStdLogger(name string, debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewExample().Named(name)
	}
	return logger.Named(name)
}
