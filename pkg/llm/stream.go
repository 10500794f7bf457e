package llm

import (
	"iter"
	"strings"
)

// Stream is a lazy, forward-only sequence of text deltas produced by a
// streaming completion call. Deltas arrive in server-send order; if the call
// fails mid-stream the error is yielded as the final item, so everything
// delivered before it remains valid. A Stream is not restartable; getting
// the response again requires a new call.
//
// Callers must consume the stream by ranging over Iter (breaking out early
// is fine) or by calling Collect. Abandoning the loop releases the
// underlying transport resources and aborts the transfer.
type Stream struct {
	requestID string
	seq       iter.Seq2[string, error]
}

// NewStream wraps a raw delta iterator. The iterator must yield a non-nil
// error at most once, as its last item.
func NewStream(requestID string, seq iter.Seq2[string, error]) *Stream {
	return &Stream{requestID: requestID, seq: seq}
}

// RequestID identifies the originating call, for log correlation.
func (s *Stream) RequestID() string {
	return s.requestID
}

// Iter returns the delta iterator for use with range-over-func loops:
//
//	for delta, err := range stream.Iter() {
//	    if err != nil { ... }
//	    fmt.Print(delta)
//	}
func (s *Stream) Iter() iter.Seq2[string, error] {
	return s.seq
}

// Collect drains the stream and returns the concatenated text. On a
// mid-stream error it returns the text accumulated so far together with the
// error.
func (s *Stream) Collect() (string, error) {
	var b strings.Builder
	for delta, err := range s.seq {
		if err != nil {
			return b.String(), err
		}
		b.WriteString(delta)
	}
	return b.String(), nil
}
