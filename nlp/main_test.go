package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/summarise/nlp/export"
)

func TestRunSingleDocument(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{
		"-title", "cat", "-text", "The cat sat on the mat. The cat ran.", "-summary",
	}, nil, &out, &errOut)
	require.NoError(t, err, errOut.String())

	var rep export.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Len(t, rep.Sentences, 2)
	assert.Equal(t, []int{0, 1}, rep.Summary)
}

func TestRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("One fish. Two fish. Red fish."), 0o644))

	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-file", path, "-rank-cutoff", "2"}, nil, &out, &errOut)
	require.NoError(t, err)

	var rep export.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, []float64{1, 0.5, 0}, []float64(rep.Position))
}

func TestRunBatchFromStdin(t *testing.T) {
	in := strings.NewReader(`{"id":"a","text":"The cat sat."}
{"id":"b","text":"Dogs bark loudly."}
`)
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-batch", "-"}, in, &out, &errOut)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"id":"a"`)
	assert.Contains(t, lines[1], `"id":"b"`)
}

func TestRunRejectsNegativeCutoff(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-text", "x", "-rank-cutoff", "-1"}, nil, &out, &errOut)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
