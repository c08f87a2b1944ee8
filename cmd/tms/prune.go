package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thkos/tms/internal/services/reporting"
)

// pruneCmd deletes a single billed session row from the history
var pruneCmd = &cobra.Command{
	Use:   "prune <session-id>",
	Short: "Delete a billed session from the history by its id",
	Long: `Delete a single billed session row, e.g. a mis-billed entry skewing
the reports. Session ids are listed by "tms report --sessions".`,
	Args: cobra.ExactArgs(1),
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", args[0], err)
	}

	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.reports.DeleteRecord(context.Background(), &reporting.DeleteRecordInput{ID: id}); err != nil {
		return err
	}

	fmt.Printf("deleted session %d\n", id)
	return nil
}
