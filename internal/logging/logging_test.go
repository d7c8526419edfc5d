package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewText(&buf, true))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("built shell", "faces", 6)
	assert.Contains(t, buf.String(), "built shell")
	assert.Contains(t, buf.String(), "faces=6")
}

func TestNewTextInfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, false)
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
