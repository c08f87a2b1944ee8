package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thkos/tms/internal/services/reporting"
)

var (
	reportCategory string
	reportInstance string
	reportFrom     string
	reportTo       string
	reportSessions bool
)

// reportCmd prints an earnings report without opening the dashboard
var reportCmd = &cobra.Command{
	Use:   "report [daily|weekly|monthly|yearly|custom]",
	Short: "Print an earnings report for a period",
	Long: `Print an earnings report for finished sessions. The custom period
requires --from and --to dates in YYYY-MM-DD form.

Examples:
  tms report daily
  tms report monthly --category Billiards
  tms report custom --from 2025-04-01 --to 2025-04-19`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportCategory, "category", "", "Filter by category name")
	reportCmd.Flags().StringVar(&reportInstance, "instance", "", "Filter by instance name")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Range start (YYYY-MM-DD), custom period only")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "Range end (YYYY-MM-DD), custom period only")
	reportCmd.Flags().BoolVar(&reportSessions, "sessions", false, "List the individual billed sessions with their ids")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	input := &reporting.FetchInput{
		Period:       reporting.Period(args[0]),
		CategoryName: reportCategory,
		InstanceName: reportInstance,
	}

	if input.Period == reporting.PeriodCustom {
		from, err := time.Parse("2006-01-02", reportFrom)
		if err != nil {
			return fmt.Errorf("invalid --from date: %w", err)
		}
		to, err := time.Parse("2006-01-02", reportTo)
		if err != nil {
			return fmt.Errorf("invalid --to date: %w", err)
		}
		input.StartDate = from
		input.EndDate = to
	}

	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.close()

	output, err := a.reports.Fetch(context.Background(), input)
	if err != nil {
		return err
	}

	summary := output.Summary
	fmt.Printf("Period: %s\n", input.Period)
	fmt.Printf("Sessions: %d\n", summary.Sessions)
	fmt.Printf("Earnings: %.2f\n", summary.TotalEarnings)
	fmt.Printf("Played:   %s\n\n", formatSeconds(summary.TotalSeconds))

	for _, category := range summary.Categories {
		fmt.Printf("%-20s %4d sessions %10.2f\n",
			category.CategoryName, category.Sessions, category.Earnings)
	}

	if reportSessions && len(output.Records) > 0 {
		fmt.Println()
		for _, record := range output.Records {
			started := ""
			if record.StartTime != nil {
				started = record.StartTime.Format("2006-01-02 15:04")
			}
			fmt.Printf("%d  %-16s %-14s %-14s %10s %8.2f\n",
				record.ID, started, record.CategoryName, record.InstanceName,
				formatSeconds(record.ElapsedTime), record.TotalCost)
		}
	}

	return nil
}

func formatSeconds(seconds int64) string {
	return (time.Duration(seconds) * time.Second).String()
}
