package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/courier/pkg/llm"
)

var chatTemperature float32

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().Float32Var(&chatTemperature, "temperature", -1, "sampling temperature (omitted when unset)")
}

var chatCmd = &cobra.Command{
	Use:   "chat <prompt>",
	Short: "Stream a completion for a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg)

	provider := buildProvider(cfg)
	ctx := cmd.Context()

	if err := provider.Authenticate(ctx); err != nil {
		if errors.Is(err, llm.ErrCredentialsNotFound) {
			return fmt.Errorf("no API key found: set OPENAI_API_KEY or run `courier auth login`")
		}
		return fmt.Errorf("authenticate: %w", err)
	}

	model := provider.Model()
	req := llm.Request{
		Model:    model,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: strings.Join(args, " ")}},
	}
	if chatTemperature >= 0 {
		req.Temperature = &chatTemperature
	}

	// Budget check before the call; an estimate failure is not fatal.
	if count, err := provider.CountTokens(ctx, req); err != nil {
		slog.Debug("token estimate failed", "error", err)
	} else if count > model.ContextWindow {
		slog.Warn("prompt may exceed the model's context window",
			"tokens", count, "context_window", model.ContextWindow)
	}

	stream, err := provider.Stream(ctx, req)
	if err != nil {
		return err
	}

	for delta, err := range stream.Iter() {
		if err != nil {
			fmt.Fprintln(os.Stdout)
			return err
		}
		fmt.Fprint(os.Stdout, delta)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
