package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("", true))
	assert.Equal(t, slog.LevelInfo, ParseLevel("", false))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING", true))
	assert.Equal(t, slog.LevelError, ParseLevel(" error ", false))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud", false))
}

func TestProductionHandlerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, Options{}))

	log.Debug("hidden")
	log.Info("post rendered", "slug", "post1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "post rendered", line["msg"])
	assert.Equal(t, "post1", line["slug"])
}

func TestDevelopmentHandlerIsVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf, Options{Development: true})

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	slog.New(h).Debug("catalog loaded", "posts", 1)
	assert.Contains(t, buf.String(), "msg=\"catalog loaded\" posts=1")
}
