package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hotel-assistant/config"
	"hotel-assistant/pkg/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hotel-cli",
	Short: "Talk to the hotel assistant and manage its data",
	Long: `hotel-cli runs the assistant in a terminal and seeds the data it answers from.

It reads the same config.yaml as the API server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level to stderr")
}

// setup loads the configuration and a logger. Without --verbose only
// warnings and errors are logged, so the chat stays readable.
func setup() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})
	return cfg, logger, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
