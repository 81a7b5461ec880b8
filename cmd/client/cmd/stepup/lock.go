package stepup

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var LockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Forget the current verification immediately",
	Long: `Drop the remembered secondary password verification now, regardless
of how much of the remember window is left. The next reveal re-prompts.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		app.LockStepup()

		color.Green("Locked.")
		return nil
	},
}
