package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLoggerTo_LineShape verifies the type/message/timestamp contract of
// every log line.
func TestNewLoggerTo_LineShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "test-role")

	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["type"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test-role", entry["role"])

	ts, ok := entry["timestamp"].(string)
	require.True(t, ok, "expected string 'timestamp' field")
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

// TestNewLoggerTo_ErrorType verifies that error entries carry type=error and
// the error text.
func TestNewLoggerTo_ErrorType(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "err-role")

	l.Error().Err(assert.AnError).Msg("boom")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["type"])
	assert.Equal(t, assert.AnError.Error(), entry["error"])
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_GlobalLevelIsDebug verifies that NewLogger sets the global
// zerolog level to Debug.
func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-role")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerTo(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestWithTrace_AddsTraceID verifies the trace_id field.
func TestWithTrace_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "trace").WithTrace("abc-123")

	l.Info().Msg("tick")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "abc-123", entry["trace_id"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "ctx-role")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
}

// TestNewLoggerTo_TypeIsInfoOrError verifies that every level is written with
// type "info" or "error" and that folded levels keep their original name.
func TestNewLoggerTo_TypeIsInfoOrError(t *testing.T) {
	tests := []struct {
		name      string
		write     func(l *Logger)
		wantType  string
		wantLevel string
	}{
		{name: "trace", write: func(l *Logger) { l.Trace().Msg("m") }, wantType: "info", wantLevel: "trace"},
		{name: "debug", write: func(l *Logger) { l.Debug().Msg("m") }, wantType: "info", wantLevel: "debug"},
		{name: "info", write: func(l *Logger) { l.Info().Msg("m") }, wantType: "info"},
		{name: "warn", write: func(l *Logger) { l.Warn().Msg("m") }, wantType: "error", wantLevel: "warn"},
		{name: "error", write: func(l *Logger) { l.Error().Msg("m") }, wantType: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLoggerTo(&buf, "levels")
			prev := zerolog.GlobalLevel()
			zerolog.SetGlobalLevel(zerolog.TraceLevel)
			defer zerolog.SetGlobalLevel(prev)

			tt.write(l)

			entry := decodeLine(t, &buf)
			assert.Equal(t, tt.wantType, entry["type"])
			if tt.wantLevel == "" {
				assert.NotContains(t, entry, "level")
			} else {
				assert.Equal(t, tt.wantLevel, entry["level"])
			}
		})
	}
}

// TestWithTrace_WarnLineIsError verifies that child loggers keep the folding.
func TestWithTrace_WarnLineIsError(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "tick").WithTrace("t-1")

	l.Warn().Msg("data directory not measurable, reporting it as empty")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["type"])
	assert.Equal(t, "t-1", entry["trace_id"])
}
