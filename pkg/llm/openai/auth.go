package openai

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/user/courier/pkg/llm"
)

// storeUsername is the username recorded next to the secret in the store.
const storeUsername = "Bearer"

// IsAuthenticated reports whether a credential is held in memory.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKey != ""
}

// Authenticate resolves a credential and stores it in memory. An already
// authenticated provider returns immediately with no I/O. Resolution order:
// the OPENAI_API_KEY environment variable first, then the secure store keyed
// by the endpoint URL. When both come up empty the caller gets
// llm.ErrCredentialsNotFound and is expected to prompt the user and call
// SetCredential.
//
// Concurrent calls collapse into one resolution. A call racing
// ResetCredentials has unspecified ordering; callers must not rely on the
// interleaving.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.IsAuthenticated() {
		return nil
	}

	_, err, _ := c.authGroup.Do("authenticate", func() (any, error) {
		// Re-check under the group: a concurrent call may have finished.
		if c.IsAuthenticated() {
			return nil, nil
		}

		c.mu.Lock()
		baseURL := c.baseURL
		c.mu.Unlock()

		apiKey := os.Getenv(apiKeyEnvVar)
		if apiKey == "" {
			_, secret, ok, err := c.store.Read(ctx, baseURL)
			if err != nil {
				return nil, fmt.Errorf("read credentials: %w", err)
			}
			if !ok {
				return nil, llm.ErrCredentialsNotFound
			}
			if !utf8.Valid(secret) {
				return nil, fmt.Errorf("stored credential is not valid UTF-8")
			}
			apiKey = string(secret)
		}

		c.mu.Lock()
		c.apiKey = apiKey
		c.mu.Unlock()
		return nil, nil
	})
	return err
}

// SetCredential writes the secret to the store and authenticates with it.
func (c *Client) SetCredential(ctx context.Context, secret string) error {
	c.mu.Lock()
	baseURL := c.baseURL
	c.mu.Unlock()

	if err := c.store.Write(ctx, baseURL, storeUsername, []byte(secret)); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}

	c.mu.Lock()
	c.apiKey = secret
	c.mu.Unlock()
	return nil
}

// ResetCredentials clears the in-memory credential. The store delete is
// best effort: resetting must always succeed locally, so a failure there is
// logged and swallowed.
func (c *Client) ResetCredentials(ctx context.Context) error {
	c.mu.Lock()
	baseURL := c.baseURL
	c.mu.Unlock()

	if err := c.store.Delete(ctx, baseURL); err != nil {
		c.logger.Warn("delete stored credentials", "endpoint", baseURL, "error", err)
	}

	c.mu.Lock()
	c.apiKey = ""
	c.mu.Unlock()
	return nil
}
