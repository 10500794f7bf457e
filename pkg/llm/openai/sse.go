package openai

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxSSELineSize caps a single server-sent line at 1 MB. The default
// bufio.Scanner limit of 64 KiB is too small for long completion fragments.
const maxSSELineSize = 1 * 1024 * 1024

// sseScanner reads server-sent events from a response body. It skips
// comments and blank lines, joins multi-line data fields, and treats the
// [DONE] sentinel as end of stream.
type sseScanner struct {
	scanner *bufio.Scanner
}

func newSSEScanner(r io.Reader) *sseScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxSSELineSize)
	return &sseScanner{scanner: sc}
}

// next returns the next data payload. It returns io.EOF when the stream
// closes or the [DONE] sentinel arrives.
func (s *sseScanner) next() (string, error) {
	var data []string

	for s.scanner.Scan() {
		line := s.scanner.Text()

		// Blank line ends an event; flush accumulated data lines.
		if line == "" {
			if len(data) > 0 {
				return strings.Join(data, "\n"), nil
			}
			continue
		}

		// SSE comment, used by servers as a keep-alive.
		if strings.HasPrefix(line, ":") {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "data:"); ok {
			rest = strings.TrimSpace(rest)
			if rest == "[DONE]" {
				return "", io.EOF
			}
			data = append(data, rest)
			continue
		}

		// Other fields (event:, id:, retry:) carry nothing we need.
	}

	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}
	if len(data) > 0 {
		return strings.Join(data, "\n"), nil
	}
	return "", io.EOF
}
