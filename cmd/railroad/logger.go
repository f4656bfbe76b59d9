package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes human-readable log lines to w. Warnings and errors are
// always shown; verbose adds info and debug adds everything.
func newLogger(w io.Writer, verbose, debug bool) *zap.Logger {
	level := zap.WarnLevel
	switch {
	case debug:
		level = zap.DebugLevel
	case verbose:
		level = zap.InfoLevel
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), level)
	return zap.New(core)
}
