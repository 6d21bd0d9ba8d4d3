package cmd

import (
	"fmt"
	"os"

	"github.com/SBKofficial/monster-maker/internal/bot"
	"github.com/SBKofficial/monster-maker/internal/config"
	"github.com/spf13/cobra"
)

func newStartCmd(verbose bool, version string, buildTime string) *cobra.Command {
	return &cobra.Command{
		Use:          "start [config.toml]",
		Short:        "monster-maker start",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := "./config.toml"
			if len(args) > 0 {
				configPath = args[0]
			}
			return run(verbose, configPath, version, buildTime)
		},
	}
}

func run(verbose bool, configFile string, version string, buildTime string) error {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configFile)
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The two secrets live in the process environment, not in the config
	// file. A missing secret is fatal before the bot starts.
	if err := config.LoadSecrets(cfg); err != nil {
		return err
	}

	if verbose && cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "debug"
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return bot.StartBot(cfg, version, buildTime)
}
