package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/tweetflow/internal/config"
	"github.com/aretw0/tweetflow/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tweetflow",
	Short: "tweetflow builds n8n workflows that automate a Twitter account",
	Long: `tweetflow turns a small configuration (topic, niche, tone, schedule and feature flags)
into an n8n workflow document, and serves the content endpoints that workflow calls.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a tweetflow settings YAML file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
}

// loadSettings reads the settings file and environment, then applies the
// persistent flags that were set explicitly.
func loadSettings(cmd *cobra.Command) (config.Settings, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	settings, err := config.Load(path)
	if err != nil {
		return config.Settings{}, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		settings.LogFormat, _ = cmd.Flags().GetString("log-format")
	}
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return config.Settings{}, nil, err
	}
	logger := logging.New(level, settings.LogFormat)
	slog.SetDefault(logger)
	return settings, logger, nil
}
