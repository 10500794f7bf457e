package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd, authStatusCmd, authLogoutCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage provider credentials",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an API key in the system keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLogging(cfg)

		fmt.Fprint(os.Stderr, "API key: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read API key: %w", err)
		}
		secret := strings.TrimSpace(line)
		if secret == "" {
			return fmt.Errorf("empty API key")
		}

		provider := buildProvider(cfg)
		if err := provider.SetCredential(cmd.Context(), secret); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Credential stored for", cfg.Provider.BaseURL)
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a credential can be resolved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLogging(cfg)

		provider := buildProvider(cfg)
		if err := provider.Authenticate(cmd.Context()); err != nil {
			fmt.Fprintln(os.Stdout, "Not authenticated:", err)
			return nil
		}
		fmt.Fprintln(os.Stdout, "Authenticated against", cfg.Provider.BaseURL)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored credential",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLogging(cfg)

		provider := buildProvider(cfg)
		if err := provider.ResetCredentials(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Credential cleared for", cfg.Provider.BaseURL)
		return nil
	},
}
