package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaults(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Provider.Model != "gpt-4o" {
		t.Errorf("expected default model gpt-4o, got %q", cfg.Provider.Model)
	}
	if cfg.Provider.BaseURL == "" {
		t.Error("expected a default base URL")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to disk: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "https://proxy.example.test/v1")
	t.Setenv("OPENAI_MODEL", "gpt-4")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Provider.BaseURL != "https://proxy.example.test/v1" {
		t.Errorf("expected env base URL, got %q", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Model != "gpt-4" {
		t.Errorf("expected env model, got %q", cfg.Provider.Model)
	}
}

func TestSetAndGetValue(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "")
	path := filepath.Join(t.TempDir(), "config.json")
	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}

	if err := SetValue(path, "provider.model", "gpt-4"); err != nil {
		t.Fatal(err)
	}
	val, err := GetValue(path, "provider.model")
	if err != nil {
		t.Fatal(err)
	}
	if val != "gpt-4" {
		t.Errorf("expected gpt-4, got %v", val)
	}
}

func TestSetValueUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}
	if err := SetValue(path, "no.such.key", "x"); err == nil {
		t.Error("expected an error for an unknown key")
	}
}
