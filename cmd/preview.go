package cmd

import (
	"fmt"

	"github.com/Beliver-247/UniSchedule/pkg/exporter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [dataset.json]",
	Short: "List the concrete dates a group's sessions occur on",
	Long: `Expand a group's weekly sessions into the concrete dates they occur on
within the semester date range, without writing a calendar file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetPath := defaultDatasetPath
		if len(args) > 0 {
			datasetPath = args[0]
		}

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

		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
		dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

		fmt.Println(titleStyle.Render(fmt.Sprintf("Sessions for %s, %s to %s",
			group.Label, start.Format(dateLayout), end.Format(dateLayout))))

		for _, s := range group.Events {
			occurrences, err := exporter.Occurrences(s, start, end)
			if err != nil {
				fmt.Printf("• %s (%s %s): %v\n", s.Title, s.Day, s.Start, err)
				continue
			}

			fmt.Printf("• %s (%s %s, %d min)\n", s.Title, s.Day, s.Start, s.DurationMinutes)
			for _, occ := range occurrences {
				fmt.Printf("  %s\n", dateStyle.Render(occ.Format("Mon 2006-01-02 15:04")))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("group", "g", "", "Group id to preview (see 'unischedule groups')")
	previewCmd.Flags().StringP("start", "s", "", "Semester start date (YYYY-MM-DD, inclusive)")
	previewCmd.Flags().StringP("end", "e", "", "Semester end date (YYYY-MM-DD, inclusive)")
}
