package features

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/oarkflow/summarise/nlp/document"
)

// Extractor ties a Parser and a stopword resource to the four scorers.
// It holds no per-document state and may be shared between goroutines if
// its collaborators can.
type Extractor struct {
	parser Parser
	stop   Stopwords
	log    *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.log = l
		}
	}
}

// NewExtractor returns an Extractor over p and stop. A nil stop keeps every
// token.
func NewExtractor(p Parser, stop Stopwords, opts ...Option) *Extractor {
	e := &Extractor{parser: p, stop: stop, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Preprocess runs the preprocessing step alone.
func (e *Extractor) Preprocess(ctx context.Context, text string) (*PreprocessResult, error) {
	return Preprocess(ctx, e.parser, e.stop, text)
}

// ParseTitle parses a title string into tokens and drops stopwords. The
// title feature divides by the number of tokens returned here, so "The cat"
// counts as one title token.
func (e *Extractor) ParseTitle(ctx context.Context, title string) ([]document.Token, error) {
	if title == "" {
		return nil, nil
	}
	res, err := e.Preprocess(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	return document.Flatten(res.Sentences), nil
}

// Compute preprocesses text and returns the four feature vectors together
// with the filtered sentences they are aligned to.
func (e *Extractor) Compute(ctx context.Context, text string, title []document.Token, rankCutoff int) (*Features, error) {
	if rankCutoff <= 0 {
		return nil, fmt.Errorf("%w: rank cutoff must be positive, got %d", ErrInvalidConfiguration, rankCutoff)
	}
	pre, err := e.Preprocess(ctx, text)
	if err != nil {
		return nil, err
	}
	e.log.Debug("preprocessed document",
		slog.Int("sentences", len(pre.Sentences)),
		slog.Int("lemmas", pre.Frequencies.Len()),
		slog.Int("longest", pre.Longest))
	return Score(pre, title, rankCutoff)
}

// Score runs the four scorers concurrently over pre.
func Score(pre *PreprocessResult, title []document.Token, rankCutoff int) (*Features, error) {
	out := &Features{Sentences: pre.Sentences, Frequencies: pre.Frequencies}
	var g errgroup.Group
	g.Go(func() error {
		out.Title = ScoreTitle(pre.Sentences, title)
		return nil
	})
	g.Go(func() error {
		out.Length = ScoreLength(pre.Sentences, pre.Longest)
		return nil
	})
	g.Go(func() error {
		v, err := ScoreTfIsf(pre.Sentences, pre.Frequencies)
		out.TfIsf = v
		return err
	})
	g.Go(func() error {
		v, err := ScorePosition(pre.Sentences, rankCutoff)
		out.Position = v
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
