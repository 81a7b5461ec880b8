package vault

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var purgeYes bool

var PurgeCmd = &cobra.Command{
	Use:   "purge <id>",
	Short: "Permanently delete a credential from trash",
	Long: `Permanently delete a trashed credential. This cannot be undone; the
credential must already be in trash ("vault rm" first).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		if !purgeYes {
			fmt.Print("Permanently delete this credential? [y/N]: ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.Purge(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to purge credential: %w", err)
		}

		color.Green("Permanently deleted.")
		return nil
	},
}

func init() {
	PurgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "skip the confirmation prompt")
}
