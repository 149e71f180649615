package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unischedule",
	Short: "A CLI for converting published class schedules to calendars",
	Long: `unischedule parses a university's published weekly schedule document,
normalizes it into per-group recurring sessions and exports a group's
timetable as an .ics calendar file with weekly recurrence rules.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
