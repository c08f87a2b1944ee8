package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tms",
	Short: "TMS - game station time and billing dashboard",
	Long: `TMS tracks paid usage sessions of recreational game stations at a venue:
billiards tables, ping-pong tables, console seats. It runs per-station
timers, accrues time-based cost, bills finished sessions and keeps the
earnings history browsable.`,
	Version: version,
	RunE:    runDashboard,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
