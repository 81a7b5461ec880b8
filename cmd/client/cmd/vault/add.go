package vault

import (
	"fmt"

	"passvault/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	addService  string
	addUsername string
	addCategory string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a new credential",
	Long: `Store a service/username/secret triple. The secret is prompted
interactively and encrypted by the server before it is persisted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		if addService == "" {
			fmt.Print("Service: ")
			_, _ = fmt.Scanln(&addService)
		}
		if addUsername == "" {
			fmt.Print("Username: ")
			_, _ = fmt.Scanln(&addUsername)
		}

		secret, err := readSecret("Secret: ")
		if err != nil {
			return err
		}

		meta, err := app.Add(cmd.Context(), client.CreateCredentialRequest{
			ServiceName: addService,
			Username:    addUsername,
			Secret:      secret,
			Category:    addCategory,
		})
		if err != nil {
			return fmt.Errorf("failed to store credential: %w", err)
		}

		color.Green("Stored.")
		fmt.Printf("ID: %s\n", meta.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addService, "service", "s", "", "service name")
	AddCmd.Flags().StringVarP(&addUsername, "username", "u", "", "username at the service")
	AddCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category label")
}
