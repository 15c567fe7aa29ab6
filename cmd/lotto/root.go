package main

import (
	"context"
	"fmt"

	"github.com/ArowuTest/lotto-tracker/internal/bootstrap"
	"github.com/ArowuTest/lotto-tracker/internal/config"
	"github.com/ArowuTest/lotto-tracker/internal/repositories"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configDir string
	storePath string
	seedRound int
	fixedSets string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:          "lotto",
	Short:        "Track fixed lotto number sets against official draws",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "extra directory to search for config.yaml")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "history CSV path (overrides Store.Path)")
	rootCmd.PersistentFlags().IntVar(&seedRound, "seed", 0, "round to start probing from (overrides Lottery.SeedRound)")
	rootCmd.PersistentFlags().StringVar(&fixedSets, "sets", "", "fixed sets, one per line, numbers comma separated")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(importCmd)
}

// loadConfig reads configuration and applies flag overrides
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	config.SetupLogger(cfg.LogLevel)

	if storePath != "" {
		cfg.Store.Backend = config.BackendCSV
		cfg.Store.Path = storePath
	}
	if seedRound > 0 {
		cfg.Lottery.SeedRound = seedRound
	}
	if fixedSets != "" {
		cfg.Lottery.FixedSets = fixedSets
	}
	return cfg, nil
}

// openStore loads config and opens the configured history store
func openStore(ctx context.Context) (*config.Config, repositories.DrawRecordRepository, func(context.Context) error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	repo, closeFn, err := bootstrap.OpenRecordRepository(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, repo, closeFn, nil
}
