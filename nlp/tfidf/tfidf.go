package tfidf

import (
	"math"
	"strings"

	"github.com/oarkflow/summarise/nlp/document"
)

// SentenceFrequency counts, per lemma, how many sentences contain it.
// Counts are computed on first use and memoized. A value is bound to one
// sentence list and must not be shared between documents.
type SentenceFrequency struct {
	sentences []document.Sentence
	cache     map[string]int
}

// NewSentenceFrequency binds an empty cache to sentences.
func NewSentenceFrequency(sentences []document.Sentence) *SentenceFrequency {
	return &SentenceFrequency{
		sentences: sentences,
		cache:     make(map[string]int),
	}
}

// N is the number of sentences.
func (sf *SentenceFrequency) N() int { return len(sf.sentences) }

// Count returns the number of sentences holding lemma at least once.
func (sf *SentenceFrequency) Count(lemma string) int {
	if n, ok := sf.cache[lemma]; ok {
		return n
	}
	n := 0
	for _, s := range sf.sentences {
		for i := 0; i < s.Len(); i++ {
			if strings.EqualFold(s.At(i).Lemma, lemma) {
				n++
				break
			}
		}
	}
	sf.cache[lemma] = n
	return n
}

// Inverse returns ln(N / Count(lemma)), or 0 when the lemma is absent.
func (sf *SentenceFrequency) Inverse(lemma string) float64 {
	n := sf.Count(lemma)
	if n == 0 {
		return 0
	}
	return math.Log(float64(sf.N()) / float64(n))
}
