package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/user/courier/internal/config"
	"github.com/user/courier/internal/secrets"
	"github.com/user/courier/pkg/llm"
	"github.com/user/courier/pkg/llm/openai"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "courier",
	Short:        "Stream chat completions from LLM backends",
	SilenceUsage: true,
}

func init() {
	defaultPath := filepath.Join(os.Getenv("HOME"), ".courier", "config.json")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultPath, "config file path")
}

func main() {
	// A local .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// buildProvider constructs the OpenAI-style provider from config. The
// credential is not part of config; it is resolved by Authenticate.
func buildProvider(cfg *config.Config) *openai.Client {
	store := secrets.NewKeyring(cfg.KeyringService)

	var overrides []llm.Model
	for _, m := range cfg.Provider.Models {
		overrides = append(overrides, catalogModel(m.ID, m.ContextWindow))
	}

	return openai.New(&openai.Config{
		BaseURL:         cfg.Provider.BaseURL,
		Model:           catalogModel(cfg.Provider.Model, cfg.Provider.ContextWindow),
		LowSpeedTimeout: time.Duration(cfg.Provider.LowSpeedTimeoutSecs) * time.Second,
		ModelOverrides:  overrides,
	}, store)
}

// catalogModel resolves a configured model ID against the built-in catalog,
// falling back to a custom model with the configured context window.
func catalogModel(id string, contextWindow int) llm.Model {
	if m, ok := openai.ModelByID(id); ok {
		return m
	}
	if contextWindow <= 0 {
		contextWindow = 8192
	}
	return llm.Custom(id, contextWindow)
}
