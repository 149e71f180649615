package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [dataset.json]",
	Short: "List the groups in a timetable dataset",
	Long:  `List every group in a generated timetable dataset together with its parent group and session count.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetPath := defaultDatasetPath
		if len(args) > 0 {
			datasetPath = args[0]
		}

		ds, err := readDataset(datasetPath)
		if err != nil {
			return err
		}

		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
		idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

		fmt.Println(titleStyle.Render(fmt.Sprintf("Timetable generated %s", ds.GeneratedAt)))

		if len(ds.Groups) == 0 {
			fmt.Println("No groups in this dataset.")
			return nil
		}

		for _, g := range ds.Groups {
			fmt.Printf("• %s %s %s\n",
				idStyle.Render(g.ID),
				g.Label,
				countStyle.Render(fmt.Sprintf("(%d sessions)", len(g.Events))),
			)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}
