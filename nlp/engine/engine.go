// Package engine wires the default parser, stopword resource, extractor and
// summarizer from a Config. The CLI, the batch pipeline and the HTTP server
// all go through it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oarkflow/summarise/nlp/config"
	"github.com/oarkflow/summarise/nlp/export"
	"github.com/oarkflow/summarise/nlp/features"
	"github.com/oarkflow/summarise/nlp/lemmatizer"
	"github.com/oarkflow/summarise/nlp/metrics"
	"github.com/oarkflow/summarise/nlp/parser"
	"github.com/oarkflow/summarise/nlp/segmenter"
	"github.com/oarkflow/summarise/nlp/stopwords"
	"github.com/oarkflow/summarise/nlp/summarization"
)

// Request is one document to score.
type Request struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	RankCutoff *int   `json:"rank_cutoff,omitempty"`
	Summary    bool   `json:"summary,omitempty"`
}

// Engine scores documents with one Extractor and Summarizer. It is safe for
// concurrent use.
type Engine struct {
	Extractor  *features.Extractor
	Summarizer *summarization.Summarizer

	rankCutoff   int
	parseTimeout time.Duration
	log          *slog.Logger
	metrics      *metrics.Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics records every Run on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = rec }
}

// New builds an Engine from cfg using the default parser.
func New(cfg *config.Config, log *slog.Logger, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stop, err := Stopwords(cfg.Stopwords)
	if err != nil {
		return nil, err
	}
	var dict map[string]string
	if cfg.Lemmatizer.Dictionary != "" {
		if dict, err = lemmatizer.LoadDict(cfg.Lemmatizer.Dictionary); err != nil {
			return nil, err
		}
	}
	seg, err := segmenter.New()
	if err != nil {
		return nil, fmt.Errorf("sentence segmenter: %w", err)
	}
	p := parser.New(seg, lemmatizer.New(cfg.Language, dict))
	return NewWith(cfg, p, stop, log, opts...), nil
}

// NewWith builds an Engine around a caller-supplied parser and stopwords.
func NewWith(cfg *config.Config, p features.Parser, stop features.Stopwords, log *slog.Logger, opts ...Option) *Engine {
	if log == nil {
		log = slog.Default()
	}
	e := &Engine{
		Extractor: features.NewExtractor(p, stop, features.WithLogger(log)),
		Summarizer: &summarization.Summarizer{
			MaxSentences: cfg.Summary.MaxSentences,
			Weights:      cfg.Summary.Weights,
		},
		rankCutoff:   cfg.RankCutoff,
		parseTimeout: cfg.ParseTimeout,
		log:          log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stopwords builds the stopword resource described by cfg: the file list or
// the embedded default, plus the snowball table when enabled.
func Stopwords(cfg config.Stopwords) (features.Stopwords, error) {
	list := stopwords.Default()
	if cfg.File != "" {
		l, err := stopwords.Load(cfg.File)
		if err != nil {
			return nil, err
		}
		list = l
	}
	if cfg.Snowball {
		return stopwords.Union{list, stopwords.Snowball{}}, nil
	}
	return list, nil
}

// Run scores one document. A nil RankCutoff falls back to the configured
// one. Stopwords are removed from the title as well as the text, so the
// title feature is relative to the remaining title tokens.
func (e *Engine) Run(ctx context.Context, req Request) (*export.Report, error) {
	start := time.Now()
	rep, err := e.run(ctx, req)
	if e.metrics != nil {
		e.metrics.Document(Outcome(err), time.Since(start))
	}
	if err != nil {
		e.log.Warn("feature extraction failed", slog.String("id", req.ID), slog.String("err", err.Error()))
		return nil, err
	}
	return rep, nil
}

func (e *Engine) run(ctx context.Context, req Request) (*export.Report, error) {
	cutoff := e.rankCutoff
	if req.RankCutoff != nil {
		cutoff = *req.RankCutoff
	}
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: rank cutoff must be positive, got %d", features.ErrInvalidConfiguration, cutoff)
	}
	if e.parseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.parseTimeout)
		defer cancel()
	}
	title, err := e.Extractor.ParseTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	pre, err := e.Extractor.Preprocess(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.Sentences(len(pre.Sentences), pre.Dropped)
	}
	f, err := features.Score(pre, title, cutoff)
	if err != nil {
		return nil, err
	}
	var summary []int
	if req.Summary {
		summary = e.Summarizer.Summarize(f)
	}
	e.log.Debug("features computed", slog.String("id", req.ID), slog.Int("sentences", len(f.Sentences)))
	return export.NewReport(req.ID, f, summary), nil
}

// Outcome names the error kind for logs and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, features.ErrInvalidConfiguration):
		return "invalid_configuration"
	case errors.Is(err, features.ErrParseFailure):
		return "parse_failure"
	case errors.Is(err, features.ErrInternalConsistency):
		return "internal_fault"
	default:
		return "error"
	}
}
