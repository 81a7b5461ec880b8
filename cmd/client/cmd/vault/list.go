package vault

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var offline bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored credentials",
	Long: `List the active credentials of the account. Secrets are never shown
here; use "vault show" to reveal one.

With --offline the last cached listing is printed without contacting the
server.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		if offline {
			metas, err := app.ListOffline()
			if err != nil {
				return fmt.Errorf("failed to read offline cache: %w", err)
			}
			if len(metas) == 0 {
				fmt.Println("Offline cache is empty.")
				return nil
			}
			color.Yellow("Offline listing (may be stale):")
			printMetaTable(metas, false)
			return nil
		}

		metas, err := app.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list credentials: %w", err)
		}

		if len(metas) == 0 {
			fmt.Println("No credentials stored yet.")
			return nil
		}

		printMetaTable(metas, false)
		return nil
	},
}

func init() {
	ListCmd.Flags().BoolVar(&offline, "offline", false, "read the local cache instead of the server")
}
