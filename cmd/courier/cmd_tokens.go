package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/courier/pkg/llm"
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <prompt>",
	Short: "Estimate the token footprint of a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLogging(cfg)

		provider := buildProvider(cfg)
		model := provider.Model()

		req := llm.Request{
			Model:    model,
			Messages: []llm.Message{{Role: llm.RoleUser, Content: strings.Join(args, " ")}},
		}
		count, err := provider.CountTokens(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "%d tokens (%.1f%% of %s's %d-token window)\n",
			count, float64(count)/float64(model.ContextWindow)*100, model.ID, model.ContextWindow)
		return nil
	},
}
