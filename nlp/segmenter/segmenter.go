package segmenter

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Segmenter splits text into sentences with a Punkt model trained on
// English. Calls are serialized, so one value can serve many goroutines.
type Segmenter struct {
	mu  sync.Mutex
	tok *sentences.DefaultSentenceTokenizer
}

func New() (*Segmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Segmenter{tok: tok}, nil
}

// Split returns the trimmed, non-empty sentences of text in order.
func (s *Segmenter) Split(text string) []string {
	s.mu.Lock()
	raw := s.tok.Tokenize(text)
	s.mu.Unlock()

	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
