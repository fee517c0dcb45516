package streaming

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/oarkflow/summarise/nlp/engine"
)

// maxLine bounds one JSON document.
const maxLine = 16 << 20

// ProcessDocuments decodes one engine.Request per non-blank line of r and
// calls handler for each, in order. A handler error stops the scan.
func ProcessDocuments(r io.Reader, handler func(line int, req engine.Request) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var req engine.Request
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := handler(line, req); err != nil {
			return err
		}
	}
	return scanner.Err()
}
