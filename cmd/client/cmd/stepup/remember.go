package stepup

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var RememberCmd = &cobra.Command{
	Use:   "remember <minutes>",
	Short: "Change the remember window",
	Long: `Change how long a secondary password verification stays valid,
in minutes (0-1440). 0 means every reveal re-prompts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("minutes must be a number: %w", err)
		}

		if err := app.UpdateStepupWindow(cmd.Context(), minutes); err != nil {
			return fmt.Errorf("failed to update remember window: %w", err)
		}

		color.Green("Remember window set to %d minutes.", minutes)
		return nil
	},
}
