package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/summarise/nlp/features"
	"github.com/oarkflow/summarise/nlp/summarization"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.RankCutoff)
	assert.Equal(t, "english", cfg.Language)
	assert.Equal(t, 10*time.Second, cfg.ParseTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
language: english
rank_cutoff: 3
parse_timeout: 2s
stopwords:
  snowball: true
summary:
  max_sentences: 2
  weights:
    title: 2
    tfisf: 0.5
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.RankCutoff)
	assert.Equal(t, 2*time.Second, cfg.ParseTimeout)
	assert.True(t, cfg.Stopwords.Snowball)
	assert.Equal(t, 2, cfg.Summary.MaxSentences)
	assert.Equal(t, 2.0, cfg.Summary.Weights.Title)
	assert.Equal(t, 0.5, cfg.Summary.Weights.TfIsf)
	// untouched keys keep their defaults
	assert.Equal(t, 1.0, cfg.Summary.Weights.Length)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadJSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"rank_cutoff": 7, "server": {"addr": ":9000"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RankCutoff)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadJSONParseTimeout(t *testing.T) {
	cfg, err := Load(writeFile(t, "a.json", `{"parse_timeout": "1m30s", "summary": {"weights": {"title": 3}}}`))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.ParseTimeout)
	assert.Equal(t, summarization.Weights{Title: 3, Length: 1, TfIsf: 1, Position: 1}, cfg.Summary.Weights)

	cfg, err = Load(writeFile(t, "b.json", `{"parse_timeout": 2000000000}`))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.ParseTimeout)

	cfg, err = Load(writeFile(t, "c.json", `{"rank_cutoff": 2}`))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.ParseTimeout)

	_, err = Load(writeFile(t, "d.json", `{"parse_timeout": "soon"}`))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "rank_cutoff: [1, 2"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SUMMARISE_RANK_CUTOFF", "9")
	t.Setenv("SUMMARISE_LOG_LEVEL", "warn")
	t.Setenv("SUMMARISE_ADDR", ":7070")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.RankCutoff)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":7070", cfg.Server.Addr)

	t.Setenv("SUMMARISE_RANK_CUTOFF", "five")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.RankCutoff = 0
	assert.ErrorIs(t, cfg.Validate(), features.ErrInvalidConfiguration)

	cfg = Default()
	cfg.Workers = 0
	assert.ErrorIs(t, cfg.Validate(), features.ErrInvalidConfiguration)

	cfg = Default()
	cfg.Summary.MaxSentences = -1
	assert.ErrorIs(t, cfg.Validate(), features.ErrInvalidConfiguration)
}
