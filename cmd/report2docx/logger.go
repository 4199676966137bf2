package main

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-report2docx/internal/config"
)

// newLogger returns a console logger writing to w at the given level
// (none, normal, debug). Unknown levels behave like normal.
func newLogger(level string, w io.Writer) *zap.Logger {
	var lvl zapcore.Level
	switch strings.ToLower(level) {
	case config.LogLevelNone:
		return zap.NewNop()
	case config.LogLevelDebug:
		lvl = zapcore.DebugLevel
	default:
		lvl = zapcore.InfoLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("report2docx")
}

// resolveLogLevel picks the level: --quiet and --verbose win over config.
func resolveLogLevel(f commonFlags, cfg *config.Config) string {
	switch {
	case f.verbose:
		return config.LogLevelDebug
	case f.quiet:
		return config.LogLevelNone
	case cfg.Logging.Level != "":
		return strings.ToLower(cfg.Logging.Level)
	default:
		return config.LogLevelNormal
	}
}
