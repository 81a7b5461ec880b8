package stepup

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var enableMinutes int

var EnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable the secondary password gate",
	Long: `Set a secondary password that guards secret reveals.

Running enable again replaces the previous secondary password with a new
one. The remember window controls how long one verification stays valid;
0 means every reveal re-prompts.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		secret, err := readSecret("Secondary password: ")
		if err != nil {
			return err
		}

		secretConfirm, err := readSecret("Repeat secondary password: ")
		if err != nil {
			return err
		}

		if secret != secretConfirm {
			return fmt.Errorf("passwords do not match")
		}

		if err := app.EnableStepup(cmd.Context(), secret, enableMinutes); err != nil {
			return fmt.Errorf("failed to enable secondary password: %w", err)
		}

		color.Green("Secondary password enabled.")
		return nil
	},
}

func init() {
	EnableCmd.Flags().IntVarP(&enableMinutes, "remember", "r", 30, "minutes a verification stays valid (0-1440, 0 always re-prompts)")
}
