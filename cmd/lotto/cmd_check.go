package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/lotto-tracker/internal/bootstrap"
	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/services"
	"github.com/ArowuTest/lotto-tracker/internal/utils"
	"github.com/spf13/cobra"
)

var checkRound int

// checkCmd evaluates the fixed sets against a draw without recording it
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the fixed sets against a draw without recording it",
	Long: `Check the fixed sets against a draw without touching the history.

Without --round the latest draw is resolved the same way update does.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkRound, "round", 0, "specific round to check")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fetcher := bootstrap.NewDrawFetcher(cfg)

	var draw models.DrawResult
	if checkRound > 0 {
		draw, err = fetcher.FetchRound(ctx, checkRound)
	} else {
		draw, err = fetcher.FetchLatest(ctx)
	}
	if err != nil {
		return errors.New(services.UserMessage(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Round %d: %v + bonus %d\n", draw.Round, draw.Numbers, draw.Bonus)
	for _, set := range utils.ParseFixedSets(cfg.Lottery.FixedSets) {
		tier, matched := services.Classify(set, draw.Numbers, draw.Bonus)
		fmt.Fprintf(out, "  %s  matched %d  %s\n", set, matched, tier)
	}
	return nil
}
