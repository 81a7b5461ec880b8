package vault

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var RmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Move a credential to trash",
	Long: `Soft-delete a credential. It disappears from the regular listing but
stays recoverable via "vault restore" until purged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}

		color.Green("Moved to trash.")
		return nil
	},
}
