package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Bharathisthe/Testing/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	cfg := config.Load()
	setupLogging(os.Stderr, cfg.Debug)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func newRootCmd(cfg *config.RuntimeConfig) *cobra.Command {
	root := &cobra.Command{
		Use:   "ballcheck",
		Short: "Checks for the ball-machine user API (login, logout, dashboard)",
		Long: `ballcheck drives the ball-machine user API.

ENVIRONMENT:
  BALLCHECK_BASE_URL   Service URL (default: ` + config.DefaultBaseURL + `)
  BALLCHECK_USERNAME   Login username
  BALLCHECK_PASSCODE   Login passcode
  BALLCHECK_TIMEOUT    Request timeout in seconds (default: 30)
  BALLCHECK_PORT       Port for "serve" (default: 8787)
  BALLCHECK_CONFIG     YAML config file (default: ~/.ballcheck/config.yaml)
  BALLCHECK_DEBUG      Debug logging`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(cfg),
		newServeCmd(cfg),
		newConfigCmd(cfg),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ballcheck %s\n", version)
			},
		},
	)
	return root
}
