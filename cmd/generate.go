package cmd

import (
	"fmt"
	"os"

	"github.com/Beliver-247/UniSchedule/pkg/timetable"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <input.html> [output.json]",
	Short: "Parse a schedule document into the timetable dataset",
	Long: `Parse a published schedule HTML document and write the normalized
timetable dataset as JSON. The dataset fully replaces any previous one.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := defaultDatasetPath
		if len(args) > 1 {
			output = args[1]
		}

		file, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("failed to open input document: %w", err)
		}
		defer file.Close()

		ds, err := timetable.ParseDocument(file)
		if err != nil {
			return fmt.Errorf("failed to parse schedule document: %w", err)
		}

		if err := writeDataset(ds, output); err != nil {
			return err
		}

		fmt.Printf("Wrote %d groups to %s\n", len(ds.Groups), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
