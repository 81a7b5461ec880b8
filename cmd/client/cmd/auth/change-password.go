package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the account password",
	Long: `Change the account password on the server.

The current password is required; existing sessions stay valid.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		oldPassword, err := readPassword("Current password: ")
		if err != nil {
			return err
		}

		newPassword, err := readPassword("New password: ")
		if err != nil {
			return err
		}

		newPasswordConfirm, err := readPassword("Repeat new password: ")
		if err != nil {
			return err
		}

		if newPassword != newPasswordConfirm {
			return fmt.Errorf("passwords do not match")
		}

		if err := app.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
			return fmt.Errorf("password change failed: %w", err)
		}

		color.Green("Password changed.")
		return nil
	},
}
