package cmd

import (
	"fmt"

	"github.com/Beliver-247/UniSchedule/pkg/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage unischedule configuration",
	Long:  "View or edit your local configuration settings (schedule URL, default group, semester dates).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setURL, _ := cmd.Flags().GetString("set-url")
		setGroup, _ := cmd.Flags().GetString("set-group")
		setStart, _ := cmd.Flags().GetString("set-start")
		setEnd, _ := cmd.Flags().GetString("set-end")

		changed := false
		if setURL != "" {
			cfg.ScheduleURL = setURL
			changed = true
		}
		if setGroup != "" {
			cfg.DefaultGroup = setGroup
			changed = true
		}
		if setStart != "" {
			if _, err := parseDate(setStart, "semester start"); err != nil {
				return err
			}
			cfg.SemesterStart = setStart
			changed = true
		}
		if setEnd != "" {
			if _, err := parseDate(setEnd, "semester end"); err != nil {
				return err
			}
			cfg.SemesterEnd = setEnd
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("Configuration saved.")
			return nil
		}

		fmt.Printf("Schedule URL:   %s\n", valueOrUnset(cfg.ScheduleURL))
		fmt.Printf("Default group:  %s\n", valueOrUnset(cfg.DefaultGroup))
		fmt.Printf("Semester start: %s\n", valueOrUnset(cfg.SemesterStart))
		fmt.Printf("Semester end:   %s\n", valueOrUnset(cfg.SemesterEnd))
		return nil
	},
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().String("set-url", "", "Set the published schedule document URL")
	configCmd.Flags().String("set-group", "", "Set the default group id for export and preview")
	configCmd.Flags().String("set-start", "", "Set the default semester start date (YYYY-MM-DD)")
	configCmd.Flags().String("set-end", "", "Set the default semester end date (YYYY-MM-DD)")
}
