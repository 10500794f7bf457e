package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Keyring stores provider credentials in the operating system keychain via
// the platform secret service. Entries are keyed by endpoint URL under a
// fixed service name; the username/secret pair is kept as a small JSON
// document because the OS facility stores a single string per entry.
type Keyring struct {
	service string
}

// NewKeyring creates a store writing under the given service name, for
// example "courier".
func NewKeyring(service string) *Keyring {
	return &Keyring{service: service}
}

type keyringEntry struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

// Read looks up the entry for key. A missing entry reports ok=false, not an
// error.
func (k *Keyring) Read(_ context.Context, key string) (string, []byte, bool, error) {
	raw, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil, false, nil
	}
	if err != nil {
		return "", nil, false, fmt.Errorf("keyring get: %w", err)
	}
	var entry keyringEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return "", nil, false, fmt.Errorf("decode keyring entry: %w", err)
	}
	return entry.Username, []byte(entry.Secret), true, nil
}

// Write stores or replaces the entry for key.
func (k *Keyring) Write(_ context.Context, key, username string, secret []byte) error {
	raw, err := json.Marshal(keyringEntry{Username: username, Secret: string(secret)})
	if err != nil {
		return fmt.Errorf("encode keyring entry: %w", err)
	}
	if err := keyring.Set(k.service, key, string(raw)); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

// Delete removes the entry for key. Deleting a missing entry succeeds.
func (k *Keyring) Delete(_ context.Context, key string) error {
	err := keyring.Delete(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
