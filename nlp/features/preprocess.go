package features

import (
	"context"
	"fmt"

	"github.com/oarkflow/summarise/nlp/document"
)

// Preprocess parses text and filters it through stop.
func Preprocess(ctx context.Context, p Parser, stop Stopwords, text string) (*PreprocessResult, error) {
	raw, err := p.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	return Build(raw, stop), nil
}

// Build drops stopword tokens from every sentence, discards sentences left
// empty, and counts the surviving lemmas.
func Build(raw []document.Sentence, stop Stopwords) *PreprocessResult {
	res := &PreprocessResult{
		Sentences:   make([]document.Sentence, 0, len(raw)),
		Frequencies: FrequencyTable{counts: make(map[string]int)},
	}
	for _, s := range raw {
		kept := make([]document.Token, 0, s.Len())
		for i := 0; i < s.Len(); i++ {
			tok := s.At(i)
			if stop != nil && stop.Contains(tok.Lemma) {
				continue
			}
			kept = append(kept, tok)
		}
		if len(kept) == 0 {
			res.Dropped++
			continue
		}
		for _, tok := range kept {
			res.Frequencies.counts[tok.Lemma]++
		}
		res.Sentences = append(res.Sentences, document.NewSentence(kept))
		if len(kept) > res.Longest {
			res.Longest = len(kept)
		}
	}
	return res
}
