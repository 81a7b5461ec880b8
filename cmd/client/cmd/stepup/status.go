package stepup

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show secondary password settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		settings, err := app.StepupSettings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch settings: %w", err)
		}

		if settings.Enabled {
			color.Green("Secondary password: enabled")
		} else {
			color.Yellow("Secondary password: disabled")
		}

		if settings.RememberMinutes == 0 {
			fmt.Println("Remember window: none (every reveal re-prompts)")
		} else {
			fmt.Printf("Remember window: %d minutes\n", settings.RememberMinutes)
		}

		return nil
	},
}
