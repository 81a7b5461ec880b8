package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the Passvault server",
	Long: `Authenticate against the server.

On success the session token is stored in the config directory and used
by all subsequent commands until logout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Print("Login: ")
		var login string
		_, _ = fmt.Scanln(&login)

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		if err := app.Login(cmd.Context(), login, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		color.Green("Logged in.")
		return nil
	},
}
