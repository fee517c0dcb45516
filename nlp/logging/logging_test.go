package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/summarise/nlp/config"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewJSONHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(config.Log{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", slog.Int("sentences", 2))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"sentences":2`)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "summarise.log")
	var buf bytes.Buffer
	log, closer, err := New(config.Log{Level: "info", File: path, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)

	log.Info("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, _, err := New(config.Log{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
