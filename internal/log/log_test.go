package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	messages []captured
}

type captured struct {
	level  string
	msg    string
	fields []Field
}

func (l *captureLogger) Debug(msg string, fields ...Field) {
	l.messages = append(l.messages, captured{"debug", msg, fields})
}

func (l *captureLogger) Info(msg string, fields ...Field) {
	l.messages = append(l.messages, captured{"info", msg, fields})
}

func (l *captureLogger) Warn(msg string, fields ...Field) {
	l.messages = append(l.messages, captured{"warn", msg, fields})
}

func (l *captureLogger) Error(msg string, fields ...Field) {
	l.messages = append(l.messages, captured{"error", msg, fields})
}

func TestSetLoggerSwapsGlobal(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	custom := &captureLogger{}
	SetLogger(custom)
	Info("board committed", F("k", 12))

	assert.Len(t, custom.messages, 1)
	assert.Equal(t, "info", custom.messages[0].level)
	assert.Equal(t, "board committed", custom.messages[0].msg)
	assert.Equal(t, F("k", 12), custom.messages[0].fields[0])
}

func TestSetLoggerNilResetsToNoop(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	SetLogger(nil)
	_, ok := GetLogger().(noopLogger)
	assert.True(t, ok)

	// noop must not panic when invoked directly.
	Debug("discarded")
	Warn("discarded")
	Error("discarded")
}
