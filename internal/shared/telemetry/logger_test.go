package telemetry

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoWritesFields(t *testing.T) {
	var buf bytes.Buffer
	SetLevel("info")
	SetOutput(&buf)

	Info("render.done", map[string]any{"template": "modern", "bytes": 42})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "render.done", entry["msg"])
	assert.Equal(t, "modern", entry["template"])
	assert.EqualValues(t, 42, entry["bytes"])
	assert.NotEmpty(t, entry["ts"])
}

func TestLevelFiltersLowerLines(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("warn")
	defer SetLevel("info")

	Info("hidden", nil)
	Warn("render.template_fallback", map[string]any{"requested": "bogus"})
	Error("render.failed", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"requested":"bogus"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestInitWithFileAndBadLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "api.log")
	Init(Options{Level: "nope", File: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	defer Init(Options{})

	Debug("debug is below the fallback level", nil)
	Info("hello", map[string]any{"k": "v"})

	var buf bytes.Buffer
	SetOutput(&buf)
	Debug("still hidden", nil)
	assert.False(t, strings.Contains(buf.String(), "still hidden"))
}
