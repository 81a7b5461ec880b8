package vault

import (
	"fmt"

	"github.com/spf13/cobra"
)

var TrashCmd = &cobra.Command{
	Use:   "trash",
	Short: "List credentials in trash",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		metas, err := app.ListTrash(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list trash: %w", err)
		}

		if len(metas) == 0 {
			fmt.Println("Trash is empty.")
			return nil
		}

		printMetaTable(metas, true)
		return nil
	},
}
