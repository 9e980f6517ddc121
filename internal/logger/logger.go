// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// node-reporter daemon.
//
// Every entry is a single JSON object on one line:
//
//	{"type":"info","role":"reporter","timestamp":"2026-10-17T09:00:00Z","message":"telemetry report sent",...}
//
// The level is written under "type" and is always "info" or "error" so that
// collectors reading the process output can filter on those two values.
// Debug and trace lines are typed "info", warn, fatal and panic lines are
// typed "error"; those lines keep zerolog's own level name under "level".
package logger

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "reporter",
// "keyvault") writing to os.Stdout.
func NewLogger(role string) *Logger {
	return NewLoggerTo(os.Stdout, role)
}

// NewLoggerTo is NewLogger with an explicit destination.
//
// The logger is configured with:
//   - global log level set to Debug;
//   - "type", "message" and "timestamp" (RFC 3339, UTC) field names;
//   - a "role" field set to role;
//   - a "func" caller field holding the fully-qualified function name.
func NewLoggerTo(w io.Writer, role string) *Logger {
	configureGlobals()

	logger := zerolog.New(w).Hook(severityHook{}).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.LevelFieldName = "type"
	zerolog.LevelTraceValue = "info"
	zerolog.LevelDebugValue = "info"
	zerolog.LevelWarnValue = "error"
	zerolog.LevelFatalValue = "error"
	zerolog.LevelPanicValue = "error"
	zerolog.MessageFieldName = "message"
	zerolog.TimestampFieldName = "timestamp"
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// severityHook records the original zerolog level of lines whose "type" was
// folded into info or error.
type severityHook struct{}

func (severityHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	// Level.String returns the remapped values, so the names are spelled out
	if name, ok := foldedLevels[level]; ok {
		e.Str("level", name)
	}
}

var foldedLevels = map[zerolog.Level]string{
	zerolog.TraceLevel: "trace",
	zerolog.DebugLevel: "debug",
	zerolog.WarnLevel:  "warn",
	zerolog.FatalLevel: "fatal",
	zerolog.PanicLevel: "panic",
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTrace returns a child logger tagged with trace_id. Used to correlate
// every line written during a single report tick.
func (l *Logger) WithTrace(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// (disabled) logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
