package vault

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var RestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a credential from trash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		meta, err := app.Restore(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to restore credential: %w", err)
		}

		color.Green("Restored %s / %s.", meta.ServiceName, meta.Username)
		return nil
	},
}
