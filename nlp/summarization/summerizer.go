package summarization

import (
	"sort"

	"github.com/oarkflow/summarise/nlp/features"
)

// Weights scale each feature before they are summed.
type Weights struct {
	Title    float64 `yaml:"title" json:"title"`
	Length   float64 `yaml:"length" json:"length"`
	TfIsf    float64 `yaml:"tfisf" json:"tfisf"`
	Position float64 `yaml:"position" json:"position"`
}

// Summarizer ranks sentences by a weighted sum of their features.
type Summarizer struct {
	MaxSentences int     `json:"max_sentences"`
	Weights      Weights `json:"weights"`
}

// Scores combines the four feature vectors linearly, one score per sentence.
func (s *Summarizer) Scores(f *features.Features) []float64 {
	out := make([]float64, len(f.Sentences))
	for i := range out {
		out[i] = s.Weights.Title*f.Title[i] +
			s.Weights.Length*f.Length[i] +
			s.Weights.TfIsf*f.TfIsf[i] +
			s.Weights.Position*f.Position[i]
	}
	return out
}

// Summarize picks the MaxSentences best scoring sentences and returns their
// indices in document order. Equal scores go to the earlier sentence. A
// negative MaxSentences selects nothing.
func (s *Summarizer) Summarize(f *features.Features) []int {
	scores := s.Scores(f)
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	n := max(0, min(s.MaxSentences, len(idx)))
	picked := idx[:n]
	sort.Ints(picked)
	return picked
}
