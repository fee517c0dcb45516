package export

import (
	"encoding/json"
	"io"

	"github.com/oarkflow/summarise/nlp/features"
)

// Sentence is one filtered sentence as it appears in a Report.
type Sentence struct {
	Index  int      `json:"index"`
	Text   string   `json:"text"`
	Lemmas []string `json:"lemmas"`
}

// Term is one lemma and its count across the filtered document.
type Term struct {
	Lemma string `json:"lemma"`
	Count int    `json:"count"`
}

// Report is the JSON form of a feature computation.
type Report struct {
	ID         string                 `json:"id,omitempty"`
	Sentences  []Sentence             `json:"sentences"`
	Title      features.FeatureVector `json:"title"`
	Length     features.FeatureVector `json:"length"`
	TfIsf      features.FeatureVector `json:"tfisf"`
	Position   features.FeatureVector `json:"position"`
	Vocabulary []Term                 `json:"vocabulary,omitempty"`
	Summary    []int                  `json:"summary,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// NewReport flattens f into a Report. summary may be nil.
func NewReport(id string, f *features.Features, summary []int) *Report {
	r := &Report{
		ID:        id,
		Sentences: make([]Sentence, len(f.Sentences)),
		Title:     f.Title,
		Length:    f.Length,
		TfIsf:     f.TfIsf,
		Position:  f.Position,
		Summary:   summary,
	}
	for i, s := range f.Sentences {
		r.Sentences[i] = Sentence{Index: i, Text: s.Text(), Lemmas: s.Lemmas()}
	}
	for _, l := range f.Frequencies.Lemmas() {
		n, _ := f.Frequencies.Count(l)
		r.Vocabulary = append(r.Vocabulary, Term{Lemma: l, Count: n})
	}
	return r
}

// ToJSON encodes r on a single line.
func ToJSON(r *Report) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Write encodes r as one line of JSON.
func Write(w io.Writer, r *Report) error {
	s, err := ToJSON(r)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}
