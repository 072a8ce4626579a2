package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	InitLogger("debug", "json", zapcore.AddSync(&buf))
	t.Cleanup(func() { InitLogger("info", "console", nil) })

	GetLogger().With("race_id", "r-1").Info("race started", "car", "car-1")

	out := buf.String()
	assert.Contains(t, out, `"msg":"race started"`)
	assert.Contains(t, out, `"race_id":"r-1"`)
	assert.Contains(t, out, `"car":"car-1"`)
}

func TestInitLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLogger("warn", "console", zapcore.AddSync(&buf))
	t.Cleanup(func() { InitLogger("info", "console", nil) })

	GetLogger().Info("hidden")
	GetLogger().Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	lvl, ok := parseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, ok = parseLevel("loud")
	assert.False(t, ok)

	_, ok = parseLevel("")
	assert.False(t, ok)
}
