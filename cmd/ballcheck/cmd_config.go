package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Bharathisthe/Testing/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(cfg *config.RuntimeConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path()
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Config file already exists at %s\nOverwrite? (y/N): ", path)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.TrimSpace(answer); a != "y" && a != "Y" {
					return nil
				}
			}
			if err := config.WriteDefault(path, true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Set the passcode with BALLCHECK_PASSCODE or a passcode: entry.")
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite without asking")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Current configuration:")
			fmt.Fprintf(out, "  Base URL:   %s\n", cfg.BaseURL)
			fmt.Fprintf(out, "  Username:   %s\n", cfg.Username)
			fmt.Fprintf(out, "  Passcode:   %s\n", config.MaskToken(cfg.Passcode))
			fmt.Fprintf(out, "  Timeout:    %v\n", cfg.Timeout)
			fmt.Fprintf(out, "  Listen:     %s\n", cfg.ListenAddr())
			fmt.Fprintf(out, "  Secret:     %s\n", config.MaskToken(cfg.TokenSecret))
			fmt.Fprintf(out, "  Token TTL:  %v\n", cfg.TokenTTL)
			fmt.Fprintf(out, "  Rate limit: %d/s burst %d\n", cfg.RateLimit, cfg.RateBurst)
			fmt.Fprintf(out, "  Config:     %s\n", config.Path())
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
