package llm

import "sync"

// ActiveProvider is the state cell holding the provider currently serving
// the application. It replaces ambient global state: the host creates one at
// startup, hands it to whoever needs to read or swap the provider, and drops
// it at shutdown. Reads are cheap; Swap is the single write entry point.
type ActiveProvider struct {
	mu       sync.RWMutex
	provider Provider
}

// NewActiveProvider creates a cell holding the given provider. The provider
// may be nil until the host finishes startup configuration.
func NewActiveProvider(p Provider) *ActiveProvider {
	return &ActiveProvider{provider: p}
}

// Get returns the current provider, or nil if none is set.
func (a *ActiveProvider) Get() Provider {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.provider
}

// Swap atomically replaces the current provider and returns the previous
// one. In-flight calls on the previous provider are unaffected; they hold
// their own snapshots.
func (a *ActiveProvider) Swap(p Provider) Provider {
	a.mu.Lock()
	defer a.mu.Unlock()
	prev := a.provider
	a.provider = p
	return prev
}
