package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the extraction collectors. Build one per registry.
type Recorder struct {
	documents     *prometheus.CounterVec
	sentences     *prometheus.CounterVec
	extractTiming prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarise_documents_total",
				Help: "Documents processed, by outcome.",
			},
			[]string{"outcome"},
		),
		sentences: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarise_sentences_total",
				Help: "Sentences seen by the preprocessor, kept or dropped after stopword filtering.",
			},
			[]string{"state"},
		),
		extractTiming: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "summarise_extract_duration_seconds",
				Help:    "Time spent computing features for one document.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(r.documents, r.sentences, r.extractTiming)
	return r
}

// Document records one finished document. outcome is "ok" or an error kind.
func (r *Recorder) Document(outcome string, took time.Duration) {
	r.documents.WithLabelValues(outcome).Inc()
	r.extractTiming.Observe(took.Seconds())
}

// Sentences adds the kept and dropped sentence counts of one document.
func (r *Recorder) Sentences(kept, dropped int) {
	r.sentences.WithLabelValues("kept").Add(float64(kept))
	r.sentences.WithLabelValues("dropped").Add(float64(dropped))
}
