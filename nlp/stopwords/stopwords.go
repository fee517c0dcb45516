package stopwords

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball/english"
)

//go:embed data/stopwords.txt
var defaultList []byte

// List is a fixed set of stopword lemmas. It is read-only once built.
type List struct {
	words map[string]struct{}
}

// Default returns the embedded English list.
func Default() *List {
	l, err := Parse(bytes.NewReader(defaultList))
	if err != nil {
		panic(err)
	}
	return l
}

// New builds a list from words.
func New(words ...string) *List {
	l := &List{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		l.words[w] = struct{}{}
	}
	return l
}

// Load reads a list from a file with one word per line.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("stopwords %s: %w", path, err)
	}
	return l, nil
}

// Parse reads one word per line. Blank lines and lines starting with '#'
// are skipped.
func Parse(r io.Reader) (*List, error) {
	l := New()
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		l.words[w] = struct{}{}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List) Contains(lemma string) bool {
	_, ok := l.words[lemma]
	return ok
}

func (l *List) Len() int { return len(l.words) }

// Snowball uses the stopword table shipped with the snowball English stemmer.
type Snowball struct{}

func (Snowball) Contains(lemma string) bool { return english.IsStopWord(lemma) }

// Checker is anything that can answer membership.
type Checker interface {
	Contains(lemma string) bool
}

// Union reports a lemma as a stopword if any of its members does.
type Union []Checker

func (u Union) Contains(lemma string) bool {
	for _, c := range u {
		if c.Contains(lemma) {
			return true
		}
	}
	return false
}
