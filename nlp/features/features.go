// Package features computes per-sentence features for extractive
// summarization: title overlap, relative length, TF-ISF salience and
// position. All values are built once per document and read-only afterwards.
package features

import (
	"context"
	"sort"

	"github.com/oarkflow/summarise/nlp/document"
)

// Parser splits raw text into sentences of lemmatized tokens.
type Parser interface {
	Parse(ctx context.Context, text string) ([]document.Sentence, error)
}

// Stopwords reports whether a lemma carries no discriminative value.
type Stopwords interface {
	Contains(lemma string) bool
}

// FeatureVector holds one score per filtered sentence, in sentence order.
type FeatureVector []float64

// FrequencyTable maps a lemma to its occurrence count across the filtered
// document.
type FrequencyTable struct {
	counts map[string]int
}

// Count returns the count for lemma and whether it is present.
func (f FrequencyTable) Count(lemma string) (int, bool) {
	n, ok := f.counts[lemma]
	return n, ok
}

// Len returns the number of distinct lemmas.
func (f FrequencyTable) Len() int { return len(f.counts) }

// Lemmas returns the lemmas in lexical order.
func (f FrequencyTable) Lemmas() []string {
	out := make([]string, 0, len(f.counts))
	for l := range f.counts {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// PreprocessResult is the only input every scorer consumes.
type PreprocessResult struct {
	Sentences   []document.Sentence
	Frequencies FrequencyTable
	// Longest is the token count of the longest filtered sentence.
	Longest int
	// Dropped counts parsed sentences left empty by filtering.
	Dropped int
}

// Features is the output of Extractor.Compute. Every vector is aligned with
// Sentences.
type Features struct {
	Sentences   []document.Sentence `json:"-"`
	Frequencies FrequencyTable      `json:"-"`
	Title       FeatureVector       `json:"title"`
	Length      FeatureVector       `json:"length"`
	TfIsf       FeatureVector       `json:"tfisf"`
	Position    FeatureVector       `json:"position"`
}

// SafeDivide returns a / b, or 0 when b is 0.
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
