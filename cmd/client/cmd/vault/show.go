package vault

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Reveal the secret of a credential",
	Long: `Decrypt and print the secret of one credential.

If the secondary password gate is enabled and no recent verification is
remembered, the secondary password is prompted first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		secret, err := app.Reveal(cmd.Context(), args[0], func() (string, error) {
			return readSecret("Secondary password: ")
		})
		if err != nil {
			return fmt.Errorf("failed to reveal secret: %w", err)
		}

		fmt.Println(secret)
		return nil
	},
}
