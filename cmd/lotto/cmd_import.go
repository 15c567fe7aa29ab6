package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ArowuTest/lotto-tracker/internal/utils"
	"github.com/spf13/cobra"
)

// importCmd merges an external history file into the store
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Merge an existing history CSV into the configured store",
	Long: `Merge an existing history CSV into the configured store.

Rounds already present in the store are skipped. Files written by the
earlier spreadsheet tool (Korean column headers) are accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	_, repo, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(context.Background())

	result, err := utils.NewCSVImporter(repo).ImportDrawRecords(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d rows (%d duplicates skipped)\n",
		result.Imported, result.TotalRows, result.SkippedDuplicates)
	return nil
}
