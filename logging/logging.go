// Package logging builds the logr.Logger handed to the fitting code.
package logging

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...)
const (
	DEBUG = 1
	TRACE = 2
)

// ErrUnknownLevel is returned for a level name New does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ParseLevel maps "trace", "debug", "info", "warn" and "error" to a zap level.
// logr verbosity V(n) corresponds to zap level -n.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zapcore.Level(-TRACE), nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, errors.Wrapf(ErrUnknownLevel, "%q", level)
}

// New returns a production zap logger at the given level as a logr.Logger.
func New(level string) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), errors.Wrap(err, "logging: build zap logger")
	}
	return zapr.NewLogger(z), nil
}
