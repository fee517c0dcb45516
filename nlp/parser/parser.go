// Package parser is the default text parser: Punkt sentence splitting,
// regexp word tokens, Unicode normalization and dictionary-or-stemmer
// lemmas.
package parser

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/oarkflow/summarise/nlp/document"
	"github.com/oarkflow/summarise/nlp/lemmatizer"
	"github.com/oarkflow/summarise/nlp/normalizer"
	"github.com/oarkflow/summarise/nlp/segmenter"
	"github.com/oarkflow/summarise/nlp/tokenizer"
)

// ErrInvalidEncoding is returned for text that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("text is not valid UTF-8")

// Parser implements features.Parser on top of a segmenter and a lemmatizer.
type Parser struct {
	seg *segmenter.Segmenter
	lem *lemmatizer.Lemmatizer
}

// New returns a Parser. Both collaborators are required.
func New(seg *segmenter.Segmenter, lem *lemmatizer.Lemmatizer) *Parser {
	return &Parser{seg: seg, lem: lem}
}

// Parse splits text into sentences of lemmatized tokens. Sentences without a
// single word are skipped. ctx is checked between sentences.
func (p *Parser) Parse(ctx context.Context, text string) ([]document.Sentence, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []document.Sentence
	for _, raw := range p.seg.Split(text) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		words := tokenizer.Words(raw)
		toks := make([]document.Token, 0, len(words))
		for _, w := range words {
			n := normalizer.Normalize(w)
			if n == "" {
				continue
			}
			toks = append(toks, document.Token{Surface: w, Lemma: p.lem.Lemma(n)})
		}
		if len(toks) == 0 {
			continue
		}
		out = append(out, document.NewSentence(toks))
	}
	return out, nil
}
