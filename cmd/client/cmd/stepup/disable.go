package stepup

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var DisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the secondary password gate",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.DisableStepup(cmd.Context()); err != nil {
			return fmt.Errorf("failed to disable secondary password: %w", err)
		}

		color.Green("Secondary password disabled.")
		return nil
	},
}
