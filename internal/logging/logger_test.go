package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, false))
	defer SetLogger(nil)

	Logger().Debug("hidden")
	Logger().Warn("shown", "line", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "line=4")
}

func TestVerboseLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, true))
	defer SetLogger(nil)

	Logger().Debug("record parsed", "name", "rent")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "name=rent")
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, true))
	SetLogger(nil)

	Logger().Error("dropped")
	assert.Empty(t, buf.String())
}
