// Package log provides a logger.
package log

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of the sugared zap logger the rest of the module uses.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
}

var _ Logger = (*zap.SugaredLogger)(nil)

// NewLogger builds a console logger at the given verbosity (debug, info, warn, error).
func NewLogger(verbosity string) (*zap.SugaredLogger, error) {
	logLevel, err := zapcore.ParseLevel(verbosity)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse verbosity %q", verbosity)
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.Encoding = "console"
	// Timestamp format (ISO8601) and time zone (UTC)
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05Z0700"))
	}
	config.Level.SetLevel(logLevel)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func NewNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
