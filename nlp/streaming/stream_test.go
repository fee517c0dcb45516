package streaming

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/summarise/nlp/engine"
)

func TestProcessDocuments(t *testing.T) {
	in := `{"id":"a","title":"Cats","text":"The cat sat."}

{"id":"b","text":"Dogs bark.","rank_cutoff":2,"summary":true}
`
	var got []engine.Request
	var lines []int
	err := ProcessDocuments(strings.NewReader(in), func(line int, req engine.Request) error {
		lines = append(lines, line)
		got = append(got, req)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 3}, lines)
	assert.Equal(t, "Cats", got[0].Title)
	assert.Nil(t, got[0].RankCutoff)
	require.NotNil(t, got[1].RankCutoff)
	assert.Equal(t, 2, *got[1].RankCutoff)
	assert.True(t, got[1].Summary)
}

func TestProcessDocumentsBadJSON(t *testing.T) {
	err := ProcessDocuments(strings.NewReader("{\"id\":\"a\"}\nnot json\n"), func(int, engine.Request) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestProcessDocumentsHandlerError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := ProcessDocuments(strings.NewReader("{}\n{}\n"), func(int, engine.Request) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}
