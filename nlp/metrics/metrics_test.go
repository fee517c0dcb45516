package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.Document("ok", 20*time.Millisecond)
	r.Document("ok", 5*time.Millisecond)
	r.Document("parse_failure", time.Millisecond)
	r.Sentences(3, 1)
	r.Sentences(2, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.documents.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.documents.WithLabelValues("parse_failure")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.sentences.WithLabelValues("kept")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.sentences.WithLabelValues("dropped")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.extractTiming, "summarise_extract_duration_seconds"))
}

func TestNewPanicsOnDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
