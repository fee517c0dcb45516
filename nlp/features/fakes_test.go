package features

import (
	"context"
	"errors"
	"strings"

	"github.com/oarkflow/summarise/nlp/document"
)

// fakeParser splits on "." and whitespace and lowercases each word as its
// lemma.
type fakeParser struct {
	err   error
	calls int
}

func (p *fakeParser) Parse(_ context.Context, text string) ([]document.Sentence, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	var out []document.Sentence
	for _, raw := range strings.Split(text, ".") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			continue
		}
		toks := make([]document.Token, len(words))
		for i, w := range words {
			toks[i] = document.Token{Surface: w, Lemma: strings.ToLower(w)}
		}
		out = append(out, document.NewSentence(toks))
	}
	return out, nil
}

type fakeStopwords map[string]struct{}

func (s fakeStopwords) Contains(lemma string) bool {
	_, ok := s[lemma]
	return ok
}

func stops(words ...string) fakeStopwords {
	s := make(fakeStopwords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func sent(lemmas ...string) document.Sentence {
	toks := make([]document.Token, len(lemmas))
	for i, l := range lemmas {
		toks[i] = document.Token{Surface: l, Lemma: l}
	}
	return document.NewSentence(toks)
}

func title(lemmas ...string) []document.Token {
	return sent(lemmas...).Tokens()
}

var errBroken = errors.New("broken input")
