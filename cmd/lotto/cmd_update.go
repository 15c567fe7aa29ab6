package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/lotto-tracker/internal/bootstrap"
	"github.com/ArowuTest/lotto-tracker/internal/services"
	"github.com/ArowuTest/lotto-tracker/internal/utils"
	"github.com/spf13/cobra"
)

// updateCmd fetches the latest draw and records it
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the latest draw, check the fixed sets and append it to the history",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	cfg, repo, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(context.Background())

	sets := utils.ParseFixedSets(cfg.Lottery.FixedSets)
	fmt.Fprintf(cmd.OutOrStdout(), "Fixed sets: %v\n", sets)

	tracker := services.NewTrackerService(repo, bootstrap.NewDrawFetcher(cfg))
	if _, err := tracker.LoadHistory(ctx); err != nil {
		return err
	}

	result, records, err := tracker.TriggerUpdate(ctx, sets)
	if err != nil {
		return errors.New(services.UserMessage(err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Round %d updated: %s\n", result.Record.Round, result.Summary)
	return printHistory(cmd.OutOrStdout(), records)
}
