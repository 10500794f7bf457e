package secrets

import (
	"context"
	"sync"
)

// Memory is an in-process credential store for development and tests. It
// counts its own calls so tests can assert how often each operation ran.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	reads, writes, deletes int
}

type memoryEntry struct {
	username string
	secret   []byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Read(_ context.Context, key string) (string, []byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	entry, ok := m.entries[key]
	if !ok {
		return "", nil, false, nil
	}
	secret := make([]byte, len(entry.secret))
	copy(secret, entry.secret)
	return entry.username, secret, true, nil
}

func (m *Memory) Write(_ context.Context, key, username string, secret []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	stored := make([]byte, len(secret))
	copy(stored, secret)
	m.entries[key] = memoryEntry{username: username, secret: stored}
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.entries, key)
	return nil
}

// Counts returns how many reads, writes, and deletes have been performed.
func (m *Memory) Counts() (reads, writes, deletes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads, m.writes, m.deletes
}
