package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the local session",
	Long: `Revoke the server session and remove the locally stored token.

Any remembered secondary password verification is dropped as well.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		if !app.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}

		color.Green("Logged out.")
		return nil
	},
}
