package llm

import "context"

// Provider defines the interface every completion backend must satisfy.
// Implementations handle protocol-specific details such as request
// translation, authentication, streaming, and token accounting.
//
// A provider owns its configuration (credential, model, endpoint, timeout,
// settings version). Authenticate, SetCredential, ResetCredentials, and the
// implementation's reconfiguration entry point are the only writers, and
// they serialize against each other so readers never observe a torn
// combination of fields. In-flight calls snapshot the fields they need at
// call start, so reconfiguring never leaks new settings into an old stream.
type Provider interface {
	// AvailableModels returns the models this provider can currently serve.
	// The list is derived on demand, never stored: a configured catalog
	// override wins outright; otherwise the built-in catalog applies, except
	// that when the active model is a custom one the catalog is exactly that
	// single model.
	AvailableModels() []Model

	// SettingsVersion returns the generation counter of the provider's
	// configuration. Callers compare it against a remembered value to detect
	// that the provider was reconfigured under them.
	SettingsVersion() int

	// Model returns the active model.
	Model() Model

	// IsAuthenticated reports whether a credential is currently held in
	// memory for this provider instance.
	IsAuthenticated() bool

	// Authenticate resolves a credential and stores it in memory. Already
	// authenticated providers succeed immediately with no I/O. Resolution
	// order is environment variable, then secure store; when both come up
	// empty it fails with ErrCredentialsNotFound. Concurrent calls are safe;
	// a call racing ResetCredentials has unspecified ordering.
	Authenticate(ctx context.Context) error

	// SetCredential persists the secret to the secure store and stores it in
	// memory. This is the path the host invokes after prompting the user.
	SetCredential(ctx context.Context, secret string) error

	// ResetCredentials clears the in-memory credential and transitions to
	// unauthenticated. Deleting the stored secret is best effort: a store
	// failure is logged, never returned.
	ResetCredentials(ctx context.Context) error

	// CountTokens estimates the token footprint of a request for context
	// window budgeting. The tokenizer work runs off the calling goroutine;
	// it is pure CPU and performs no network I/O.
	CountTokens(ctx context.Context, req Request) (int, error)

	// Stream translates the request to the backend's wire format, issues one
	// streaming call, and returns the lazy delta sequence. It fails with
	// ErrMissingCredential before any network I/O when unauthenticated.
	// Overlapping calls are allowed, each with its own independent stream.
	Stream(ctx context.Context, req Request) (*Stream, error)
}

// CredentialStore is the external secure secret store, keyed by the
// provider's endpoint URL. Implementations live outside this package (OS
// keyring, test fakes).
type CredentialStore interface {
	// Read looks up the entry for key. ok is false when no entry exists;
	// err reports store-level failures only.
	Read(ctx context.Context, key string) (username string, secret []byte, ok bool, err error)

	// Write stores or replaces the entry for key.
	Write(ctx context.Context, key, username string, secret []byte) error

	// Delete removes the entry for key. Deleting a missing entry is not an
	// error.
	Delete(ctx context.Context, key string) error
}
