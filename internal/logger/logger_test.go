package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, c Config, f func()) string {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	c.Output = &buf
	Init(&c)
	f()
	return buf.String()
}

func TestLogger_TextFormat(t *testing.T) {
	out := capture(t, Config{Level: "debug", Format: FormatText, Component: "api"}, func() {
		Info("server started", "port", "8080")
	})

	assert.Contains(t, out, "server started")
	assert.Contains(t, out, "component=api")
	assert.Contains(t, out, "port=8080")
}

func TestLogger_JSONFormat(t *testing.T) {
	out := capture(t, Config{Level: "info", Format: FormatJSON, Component: "sweep"}, func() {
		Info("orphan removed", "path", "videos/a.mp4")
	})

	assert.Contains(t, out, `"msg":"orphan removed"`)
	assert.Contains(t, out, `"component":"sweep"`)
	assert.Contains(t, out, `"path":"videos/a.mp4"`)
}

func TestLogger_LevelFilter(t *testing.T) {
	out := capture(t, Config{Level: "error", Format: FormatText}, func() {
		Info("should not appear")
		Error("should appear")
	})

	assert.False(t, strings.Contains(out, "should not appear"))
	assert.Contains(t, out, "should appear")
}

func TestLogger_InstallsDefault(t *testing.T) {
	out := capture(t, Config{Level: "debug", Format: FormatText}, func() {
		slog.Info("via default", "req_id", "123")
		With("user_id", "u1").Debug("child")
	})

	assert.Contains(t, out, "req_id=123")
	assert.Contains(t, out, "user_id=u1")
}
