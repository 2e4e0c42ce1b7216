package main

import (
	"fmt"
	"time"

	"github.com/Bharathisthe/Testing/internal/api/types"
	"github.com/Bharathisthe/Testing/internal/client"
	"github.com/Bharathisthe/Testing/internal/config"
	"github.com/spf13/cobra"
)

func newRunCmd(cfg *config.RuntimeConfig) *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "One login, dashboard, logout pass against the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = cfg.BaseURL
			}
			c, err := client.New(client.Config{BaseURL: baseURL, Timeout: cfg.Timeout})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "target %s as %s\n", baseURL, cfg.Username)

			rep, err := client.RunSmoke(cmd.Context(), c, types.Credentials{
				Username: cfg.Username,
				Passcode: cfg.Passcode,
			})
			for _, s := range rep.Steps {
				mark := "ok"
				if !s.OK() {
					mark = "FAIL"
				}
				fmt.Fprintf(out, "  %-9s %-4s %3d %v\n", s.Name, mark, s.Status, s.Duration.Round(time.Millisecond))
			}
			if rep.Token != "" {
				fmt.Fprintf(out, "token %s\n", config.MaskToken(rep.Token))
			}
			if err != nil {
				return fmt.Errorf("smoke run failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "", "service URL (overrides BALLCHECK_BASE_URL)")
	return cmd
}
