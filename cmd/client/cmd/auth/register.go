package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Register a new account on the Passvault server.

The password must be at least 8 characters and mix upper and lower case,
digits and special characters.`,
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

		passwordConfirm, err := readPassword("Repeat password: ")
		if err != nil {
			return err
		}

		if password != passwordConfirm {
			return fmt.Errorf("passwords do not match")
		}

		if err := app.Register(cmd.Context(), login, password); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		color.Green("Account created.")
		fmt.Println("You can now log in: passvault auth login")
		return nil
	},
}
