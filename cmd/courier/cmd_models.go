package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modelsCmd)
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models the provider can serve",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLogging(cfg)

		provider := buildProvider(cfg)
		active := provider.Model()

		for _, m := range provider.AvailableModels() {
			marker := " "
			if m == active {
				marker = "*"
			}
			fmt.Fprintf(os.Stdout, "%s %-24s %8d tokens\n", marker, m.ID, m.ContextWindow)
		}
		return nil
	},
}
