package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oarkflow/summarise/nlp/features"
	"github.com/oarkflow/summarise/nlp/summarization"
)

type Stopwords struct {
	File     string `yaml:"file" json:"file"`
	Snowball bool   `yaml:"snowball" json:"snowball"`
}

type Lemmatizer struct {
	Dictionary string `yaml:"dictionary" json:"dictionary"`
}

type Summary struct {
	MaxSentences int                   `yaml:"max_sentences" json:"max_sentences"`
	Weights      summarization.Weights `yaml:"weights" json:"weights"`
}

type Log struct {
	Level      string `yaml:"level" json:"level"`
	Format     string `yaml:"format" json:"format"`
	File       string `yaml:"file" json:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
}

type Server struct {
	Addr      string `yaml:"addr" json:"addr"`
	BodyLimit int    `yaml:"body_limit" json:"body_limit"`
}

type Config struct {
	Language     string        `yaml:"language" json:"language"`
	RankCutoff   int           `yaml:"rank_cutoff" json:"rank_cutoff"`
	ParseTimeout time.Duration `yaml:"parse_timeout" json:"parse_timeout"`
	Workers      int           `yaml:"workers" json:"workers"`
	Stopwords    Stopwords     `yaml:"stopwords" json:"stopwords"`
	Lemmatizer   Lemmatizer    `yaml:"lemmatizer" json:"lemmatizer"`
	Summary      Summary       `yaml:"summary" json:"summary"`
	Log          Log           `yaml:"log" json:"log"`
	Server       Server        `yaml:"server" json:"server"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Language:     "english",
		RankCutoff:   5,
		ParseTimeout: 10 * time.Second,
		Workers:      4,
		Summary: Summary{
			MaxSentences: 3,
			Weights:      summarization.Weights{Title: 1, Length: 1, TfIsf: 1, Position: 1},
		},
		Log: Log{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 28,
		},
		Server: Server{Addr: ":8080", BodyLimit: 4 << 20},
	}
}

// Load reads path on top of Default, then applies environment overrides.
// Files ending in .json are decoded as JSON, anything else as YAML. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if strings.EqualFold(filepath.Ext(path), ".json") {
			if err := decodeJSON(path, cfg); err != nil {
				return nil, err
			}
		} else {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// UnmarshalJSON accepts parse_timeout either as a duration string such as
// "10s", matching the YAML form, or as integer nanoseconds.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		ParseTimeout json.RawMessage `json:"parse_timeout"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.ParseTimeout) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(aux.ParseTimeout, &s); err == nil {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse_timeout: %w", err)
		}
		c.ParseTimeout = d
		return nil
	}
	var ns int64
	if err := json.Unmarshal(aux.ParseTimeout, &ns); err != nil {
		return fmt.Errorf("parse_timeout: %w", err)
	}
	c.ParseTimeout = time.Duration(ns)
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SUMMARISE_RANK_CUTOFF"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SUMMARISE_RANK_CUTOFF: %w", err)
		}
		c.RankCutoff = n
	}
	if v := os.Getenv("SUMMARISE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SUMMARISE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	return nil
}

// Validate checks the values the scorers and servers rely on.
func (c *Config) Validate() error {
	if c.RankCutoff <= 0 {
		return fmt.Errorf("%w: rank_cutoff must be positive, got %d", features.ErrInvalidConfiguration, c.RankCutoff)
	}
	if c.Summary.MaxSentences < 0 {
		return fmt.Errorf("%w: summary.max_sentences must not be negative", features.ErrInvalidConfiguration)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", features.ErrInvalidConfiguration, c.Workers)
	}
	if c.ParseTimeout < 0 {
		return fmt.Errorf("%w: parse_timeout must not be negative", features.ErrInvalidConfiguration)
	}
	return nil
}
