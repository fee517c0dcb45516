package lemmatizer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball"
)

// Lemmatizer maps a normalized word to its base form. Dictionary entries
// win; everything else goes through the snowball stemmer of Language.
// Stopwords are returned unstemmed so stopword lists still match them.
type Lemmatizer struct {
	Language string
	dict     map[string]string
}

func New(language string, dict map[string]string) *Lemmatizer {
	if language == "" {
		language = "english"
	}
	if dict == nil {
		dict = map[string]string{}
	}
	return &Lemmatizer{Language: language, dict: dict}
}

// LoadDict reads "word,lemma" lines from path.
func LoadDict(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := ParseDict(f)
	if err != nil {
		return nil, fmt.Errorf("lemma dictionary %s: %w", path, err)
	}
	return d, nil
}

// ParseDict reads "word,lemma" lines. Malformed lines are skipped.
func ParseDict(r io.Reader) (map[string]string, error) {
	dict := make(map[string]string)
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		parts := strings.Split(scan.Text(), ",")
		if len(parts) != 2 {
			continue
		}
		word, lemma := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if word == "" || lemma == "" {
			continue
		}
		dict[word] = lemma
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return dict, nil
}

// Lemma returns the base form of word.
func (l *Lemmatizer) Lemma(word string) string {
	if lemma, ok := l.dict[word]; ok {
		return lemma
	}
	stem, err := snowball.Stem(word, l.Language, false)
	if err != nil || stem == "" {
		return word
	}
	return stem
}
