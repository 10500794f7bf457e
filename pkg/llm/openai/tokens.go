package openai

import (
	"context"

	"github.com/pkoukk/tiktoken-go"

	"github.com/user/courier/pkg/llm"
)

// fallbackTokenizerModel is the tokenizer used for models tiktoken has no
// dedicated support for: every custom model and every Anthropic model counts
// with the gpt-4 encoding. The resulting counts are approximations, not an
// error condition; they exist for context-window budgeting, not billing.
const fallbackTokenizerModel = ModelGPT4

// Per-message token overhead of the chat completions transcript format, per
// the published counting recipe for gpt-4 class models.
const (
	tokensPerMessage   = 3
	tokensReplyPriming = 3
)

// CountTokens estimates the token footprint of a request. The tokenizer
// work is dispatched to its own goroutine so the caller is only ever blocked
// on the context; it is pure CPU with no network I/O.
func (c *Client) CountTokens(ctx context.Context, req llm.Request) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	type result struct {
		count int
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		n, err := countTokens(req)
		ch <- result{n, err}
	}()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case r := <-ch:
		return r.count, r.err
	}
}

func countTokens(req llm.Request) (int, error) {
	id := req.Model.ID
	switch req.Model.Family {
	case llm.FamilyOpenAI:
	default:
		id = fallbackTokenizerModel
	}

	enc, err := tiktoken.EncodingForModel(id)
	if err != nil {
		return 0, &llm.TokenizerError{Err: err}
	}

	// Count the same role/content transcript the wire adapter would send.
	total := 0
	for _, msg := range req.Messages {
		total += tokensPerMessage
		total += len(enc.Encode(string(msg.Role), nil, nil))
		total += len(enc.Encode(msg.Content, nil, nil))
	}
	total += tokensReplyPriming
	return total, nil
}
