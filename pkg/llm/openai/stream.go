package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/user/courier/pkg/llm"
)

// lowSpeedFloor is the throughput floor in bytes per second. A transfer
// running below it for the configured low-speed timeout is aborted and
// surfaces as a transport error.
const lowSpeedFloor = 100

// maxErrorBodySize caps how much of a non-2xx response body is read.
const maxErrorBodySize = 64 * 1024

// streamCompletion issues one streaming POST to the chat completions
// endpoint and returns the raw delta iterator. Errors before the first byte
// of the stream (marshalling, connection, non-2xx status) are returned
// directly; everything after that arrives as the iterator's terminal item.
//
// The returned iterator owns the response body: it closes it when the
// consumer finishes, errors out, or abandons the loop early, which also
// aborts the underlying transfer.
func streamCompletion(ctx context.Context, client *http.Client, endpoint, apiKey string, body wireRequest, lowSpeedTimeout time.Duration) (iter.Seq2[string, error], error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	// Derived context so the low-speed watchdog can abort the transfer.
	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		cancel()
		return nil, &llm.TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		defer cancel()
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		var apiErr errorBody
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, &llm.ProtocolError{Err: fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error.Message)}
		}
		return nil, &llm.ProtocolError{Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))}
	}

	var reader io.Reader = resp.Body
	var watch *speedWatch
	if lowSpeedTimeout > 0 {
		watch = newSpeedWatch(lowSpeedTimeout, cancel)
		reader = watch.wrap(resp.Body)
		go watch.run()
	}

	seq := func(yield func(string, error) bool) {
		defer cancel()
		defer resp.Body.Close()
		if watch != nil {
			defer watch.stop()
		}

		scanner := newSSEScanner(reader)
		for {
			payload, err := scanner.next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if watch != nil && watch.tripped() {
					err = fmt.Errorf("throughput under %d B/s for %s: %w", lowSpeedFloor, lowSpeedTimeout, err)
				}
				yield("", &llm.TransportError{Err: err})
				return
			}

			var chunk streamChunk
			if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
				yield("", &llm.ProtocolError{Err: fmt.Errorf("parse fragment: %w", err)})
				return
			}

			if len(chunk.Choices) == 0 {
				continue
			}
			// Multi-choice fragments are not exercised in practice; take
			// the most recent choice.
			delta := chunk.Choices[len(chunk.Choices)-1].Delta
			if delta.Content == nil {
				// Role-only or keep-alive fragment.
				continue
			}
			if !yield(*delta.Content, nil) {
				return
			}
		}
	}
	return seq, nil
}

// speedWatch aborts a transfer whose throughput stays under lowSpeedFloor
// for longer than the timeout. It samples a byte counter once per second and
// cancels the request context when the stall budget runs out.
type speedWatch struct {
	timeout time.Duration
	cancel  context.CancelFunc
	bytes   atomic.Int64
	stalled atomic.Bool
	done    chan struct{}
}

func newSpeedWatch(timeout time.Duration, cancel context.CancelFunc) *speedWatch {
	return &speedWatch{
		timeout: timeout,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

func (w *speedWatch) wrap(r io.Reader) io.Reader {
	return &countingReader{r: r, n: &w.bytes}
}

func (w *speedWatch) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var last int64
	var stalledFor time.Duration
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			n := w.bytes.Load()
			if n-last < lowSpeedFloor {
				stalledFor += time.Second
				if stalledFor >= w.timeout {
					w.stalled.Store(true)
					w.cancel()
					return
				}
			} else {
				stalledFor = 0
			}
			last = n
		}
	}
}

// tripped reports whether the watchdog aborted the transfer.
func (w *speedWatch) tripped() bool {
	return w.stalled.Load()
}

func (w *speedWatch) stop() {
	close(w.done)
}

type countingReader struct {
	r io.Reader
	n *atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}
