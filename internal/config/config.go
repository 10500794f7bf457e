package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the host-side configuration feeding provider construction. It
// deliberately has no credential field: secrets live in the OS keyring and
// in provider memory, never in this file.
type Config struct {
	LogLevel       string `json:"log_level"`
	KeyringService string `json:"keyring_service"`
	Provider       struct {
		BaseURL string `json:"base_url"`
		Model   string `json:"model"`
		// ContextWindow applies when the model is not in the built-in
		// catalog and is therefore treated as a custom model.
		ContextWindow       int            `json:"context_window"`
		LowSpeedTimeoutSecs int            `json:"low_speed_timeout_secs"`
		Models              []CatalogModel `json:"models"`
	} `json:"provider"`
}

// CatalogModel is one entry of a catalog override in settings.
type CatalogModel struct {
	ID            string `json:"id"`
	ContextWindow int    `json:"context_window"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LogLevel = "info"
	cfg.KeyringService = "courier"
	cfg.Provider.BaseURL = "https://api.openai.com/v1"
	cfg.Provider.Model = "gpt-4o"
	cfg.Provider.LowSpeedTimeoutSecs = 30

	// Load from file if exists, otherwise write defaults
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
	}

	// Override from env (highest precedence)
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.Provider.BaseURL = baseURL
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.Provider.Model = model
	}

	return cfg, nil
}

// Save writes the config atomically, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}
