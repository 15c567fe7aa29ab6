package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/spf13/cobra"
)

// historyCmd prints the stored draw history
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recorded draw history",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	_, repo, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(context.Background())

	records, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	return printHistory(cmd.OutOrStdout(), records)
}

func printHistory(w io.Writer, records []models.DrawRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No draws recorded yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tNUMBERS\tBONUS\tOUTCOME")
	for _, rec := range records {
		nums := make([]string, len(rec.Numbers))
		for i, n := range rec.Numbers {
			nums[i] = strconv.Itoa(n)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", rec.Round, strings.Join(nums, " "), rec.Bonus, rec.Outcome)
	}
	return tw.Flush()
}
