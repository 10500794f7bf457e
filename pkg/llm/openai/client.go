package openai

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/user/courier/pkg/llm"
)

const defaultBaseURL = "https://api.openai.com/v1"

// apiKeyEnvVar is checked before the secure store during authentication.
const apiKeyEnvVar = "OPENAI_API_KEY"

// Config holds construction-time settings for the provider. The credential
// is deliberately absent: it is resolved through Authenticate or
// SetCredential and lives only in provider memory.
type Config struct {
	// BaseURL is the API endpoint, defaulting to the public one. It also
	// keys the secure credential store.
	BaseURL string

	// Model is the active model. Defaults to gpt-4o.
	Model llm.Model

	// LowSpeedTimeout aborts a streaming call whose throughput stays under
	// the floor for this long. Zero disables the watchdog.
	LowSpeedTimeout time.Duration

	// SettingsVersion is the initial settings generation.
	SettingsVersion int

	// ModelOverrides replaces the built-in catalog when non-empty.
	ModelOverrides []llm.Model

	// HTTPClient overrides the transport. The default client carries no
	// global timeout: streams are long-lived, and the low-speed watchdog
	// plus the caller's context handle hangs.
	HTTPClient *http.Client

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Client implements llm.Provider for OpenAI-compatible APIs.
type Client struct {
	store      llm.CredentialStore
	httpClient *http.Client
	logger     *slog.Logger
	authGroup  singleflight.Group

	// mu guards everything below. Authenticate, SetCredential,
	// ResetCredentials, and Update are the only writers; every call
	// snapshots the fields it needs at call start.
	mu              sync.Mutex
	apiKey          string
	baseURL         string
	model           llm.Model
	lowSpeedTimeout time.Duration
	settingsVersion int
	modelOverrides  []llm.Model
}

var _ llm.Provider = (*Client)(nil)

// New creates an unauthenticated provider backed by the given credential
// store.
func New(cfg *Config, store llm.CredentialStore) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model.IsZero() {
		model, _ = ModelByID(ModelGPT4O)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		store:           store,
		httpClient:      httpClient,
		logger:          logger,
		baseURL:         baseURL,
		model:           model,
		lowSpeedTimeout: cfg.LowSpeedTimeout,
		settingsVersion: cfg.SettingsVersion,
		modelOverrides:  cfg.ModelOverrides,
	}
}

// Update atomically reconfigures the provider. The settings version comes
// from the host's settings layer; callers holding an older version know
// their view is stale. In-flight calls keep the snapshot they took and are
// not affected.
func (c *Client) Update(model llm.Model, baseURL string, lowSpeedTimeout time.Duration, settingsVersion int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
	c.baseURL = baseURL
	c.lowSpeedTimeout = lowSpeedTimeout
	c.settingsVersion = settingsVersion
}

// AvailableModels derives the catalog on demand: a configured override wins;
// otherwise the built-in catalog applies, unless the active model is a
// custom one, in which case it is the only model on offer.
func (c *Client) AvailableModels() []llm.Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.modelOverrides) > 0 {
		out := make([]llm.Model, len(c.modelOverrides))
		copy(out, c.modelOverrides)
		return out
	}
	if c.model.Family == llm.FamilyCustom {
		return []llm.Model{c.model}
	}
	return BuiltinModels()
}

// SettingsVersion returns the current settings generation.
func (c *Client) SettingsVersion() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settingsVersion
}

// Model returns the active model.
func (c *Client) Model() llm.Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model
}

// Stream translates the request and issues one streaming completion call.
// It fails with llm.ErrMissingCredential before any network I/O when no
// credential is held.
func (c *Client) Stream(ctx context.Context, req llm.Request) (*llm.Stream, error) {
	c.mu.Lock()
	apiKey := c.apiKey
	baseURL := c.baseURL
	model := c.model
	timeout := c.lowSpeedTimeout
	c.mu.Unlock()

	if apiKey == "" {
		return nil, llm.ErrMissingCredential
	}

	body := toWireRequest(req, model)
	requestID := uuid.New().String()
	c.logger.Debug("stream completion", "request_id", requestID, "model", body.Model)

	seq, err := streamCompletion(ctx, c.httpClient, baseURL, apiKey, body, timeout)
	if err != nil {
		return nil, err
	}
	return llm.NewStream(requestID, seq), nil
}
