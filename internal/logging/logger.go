// Package logging constructs the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// New builds a logger. JSON encoding is meant for the serve mode; console
// for the CLI.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:   "msg",
			LevelKey:     "level",
			EncodeLevel:  zapcore.LowercaseLevelEncoder,
			TimeKey:      "time",
			EncodeTime:   zapcore.RFC3339TimeEncoder,
			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build()
}

// LevelFor maps an error kind to the severity it is logged at before
// propagation: validation and configuration problems are recoverable by the
// caller; parsing and external failures are not.
func LevelFor(kind types.ErrorKind) zapcore.Level {
	switch kind {
	case types.KindValidation, types.KindConfiguration:
		return zapcore.WarnLevel
	case types.KindDocumentParsing, types.KindExternalService:
		return zapcore.ErrorLevel
	default:
		return zapcore.ErrorLevel
	}
}
