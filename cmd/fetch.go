package cmd

import (
	"fmt"

	"github.com/Beliver-247/UniSchedule/pkg/config"
	"github.com/Beliver-247/UniSchedule/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and parse the published schedule document",
	Long: `Download the schedule document from the published URL, parse it and
write the timetable dataset. Recently fetched schedules are served from
a local cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		output, _ := cmd.Flags().GetString("output")

		if url == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			url = cfg.ScheduleURL
		}
		if url == "" {
			return fmt.Errorf("no schedule URL given; pass --url or set one with 'unischedule config --set-url'")
		}

		client := timetable.NewClient()
		var ds *timetable.Dataset
		var err error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching schedule from %s...", url)).
			Action(func() {
				ds, err = client.FetchTimetable(url)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}

		if err := writeDataset(ds, output); err != nil {
			return err
		}

		fmt.Printf("Wrote %d groups to %s\n", len(ds.Groups), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringP("url", "u", "", "Schedule document URL (defaults to the configured one)")
	fetchCmd.Flags().StringP("output", "o", defaultDatasetPath, "Output dataset path")
}
