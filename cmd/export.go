package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/Beliver-247/UniSchedule/pkg/config"
	"github.com/Beliver-247/UniSchedule/pkg/exporter"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var exportCmd = &cobra.Command{
	Use:   "export [dataset.json]",
	Short: "Export a group's timetable to an ICS calendar file",
	Long: `Export one group from a generated timetable dataset as an .ics file
with weekly recurring events covering the semester date range.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetPath := defaultDatasetPath
		if len(args) > 0 {
			datasetPath = args[0]
		}
		output, _ := cmd.Flags().GetString("output")

		groupID, start, end, err := resolveSelection(cmd)
		if err != nil {
			return err
		}

		ds, err := readDataset(datasetPath)
		if err != nil {
			return err
		}

		group := ds.FindGroup(groupID)
		if group == nil {
			return fmt.Errorf("group %q not found in %s (run 'unischedule groups' to list them)", groupID, datasetPath)
		}

		// Encode into memory first so an invalid range leaves no
		// half-written file behind.
		var buf bytes.Buffer
		if err := exporter.GenerateICS(group, start, end, &buf); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Successfully exported %d sessions for %s to %s\n", len(group.Events), group.Label, output)
		return nil
	},
}

// resolveSelection merges the group/date-range flags with the saved
// configuration defaults and parses the semester bounds.
func resolveSelection(cmd *cobra.Command) (string, time.Time, time.Time, error) {
	groupID, _ := cmd.Flags().GetString("group")
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")

	if groupID == "" || startStr == "" || endStr == "" {
		cfg, err := config.Load()
		if err != nil {
			return "", time.Time{}, time.Time{}, err
		}
		if groupID == "" {
			groupID = cfg.DefaultGroup
		}
		if startStr == "" {
			startStr = cfg.SemesterStart
		}
		if endStr == "" {
			endStr = cfg.SemesterEnd
		}
	}

	if groupID == "" {
		return "", time.Time{}, time.Time{}, fmt.Errorf("no group given; pass --group or set a default with 'unischedule config --set-group'")
	}

	start, err := parseDate(startStr, "semester start")
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	end, err := parseDate(endStr, "semester end")
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}

	return groupID, start, end, nil
}

func parseDate(s, what string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("no %s date given; pass it as a flag or set a default with 'unischedule config'", what)
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q (expected YYYY-MM-DD)", what, s)
	}
	return t, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("group", "g", "", "Group id to export (see 'unischedule groups')")
	exportCmd.Flags().StringP("start", "s", "", "Semester start date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringP("end", "e", "", "Semester end date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
