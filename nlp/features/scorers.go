package features

import (
	"fmt"

	"github.com/oarkflow/summarise/nlp/document"
	"github.com/oarkflow/summarise/nlp/tfidf"
)

// ScoreTitle scores each sentence by the number of its tokens whose lemma is
// in the title, divided by the number of title tokens. Repeated matches all
// count, so scores can exceed 1.
func ScoreTitle(sentences []document.Sentence, title []document.Token) FeatureVector {
	lookup := make(map[string]struct{}, len(title))
	for _, t := range title {
		lookup[t.Lemma] = struct{}{}
	}
	out := make(FeatureVector, len(sentences))
	if len(title) == 0 {
		return out
	}
	size := float64(len(title))
	for i, s := range sentences {
		count := 0
		for j := 0; j < s.Len(); j++ {
			if _, ok := lookup[s.At(j).Lemma]; ok {
				count++
			}
		}
		out[i] = SafeDivide(float64(count), size)
	}
	return out
}

// ScoreLength scores each sentence by its length relative to longest.
func ScoreLength(sentences []document.Sentence, longest int) FeatureVector {
	out := make(FeatureVector, len(sentences))
	for i, s := range sentences {
		out[i] = SafeDivide(float64(s.Len()), float64(longest))
	}
	return out
}

// ScoreTfIsf sums freq(lemma) * ln(N / sentenceFrequency(lemma)) over each
// sentence, then divides by the largest sum if it is positive.
func ScoreTfIsf(sentences []document.Sentence, freq FrequencyTable) (FeatureVector, error) {
	sf := tfidf.NewSentenceFrequency(sentences)
	out := make(FeatureVector, len(sentences))
	largest := 0.0
	for i, s := range sentences {
		w := 0.0
		for j := 0; j < s.Len(); j++ {
			lemma := s.At(j).Lemma
			n, ok := freq.Count(lemma)
			if !ok {
				return nil, fmt.Errorf("%w: lemma %q of sentence %d not in frequency table",
					ErrInternalConsistency, lemma, i)
			}
			w += float64(n) * sf.Inverse(lemma)
		}
		out[i] = w
		if w > largest {
			largest = w
		}
	}
	if largest > 0 {
		for i := range out {
			out[i] /= largest
		}
	}
	return out, nil
}

// ScorePosition gives the first rankCutoff sentences a score falling
// linearly from 1, and every later sentence 0.
func ScorePosition(sentences []document.Sentence, rankCutoff int) (FeatureVector, error) {
	if rankCutoff <= 0 {
		return nil, fmt.Errorf("%w: rank cutoff must be positive, got %d", ErrInvalidConfiguration, rankCutoff)
	}
	out := make(FeatureVector, len(sentences))
	for i := range sentences {
		if i >= rankCutoff {
			break
		}
		out[i] = SafeDivide(float64(rankCutoff-i), float64(rankCutoff))
	}
	return out, nil
}
