package vault

import (
	"fmt"

	"passvault/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updateService  string
	updateUsername string
	updateCategory string
	updateSecret   bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a credential",
	Long: `Update service name, username, category or the secret of an active
credential. Only the provided flags change; everything else stays as is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		req := client.UpdateCredentialRequest{}
		if cmd.Flags().Changed("service") {
			req.ServiceName = &updateService
		}
		if cmd.Flags().Changed("username") {
			req.Username = &updateUsername
		}
		if cmd.Flags().Changed("category") {
			req.Category = &updateCategory
		}

		if updateSecret {
			secret, err := readSecret("New secret: ")
			if err != nil {
				return err
			}
			req.Secret = secret
		}

		if req.ServiceName == nil && req.Username == nil && req.Category == nil && req.Secret == "" {
			return fmt.Errorf("nothing to update; pass at least one of --service, --username, --category, --secret")
		}

		meta, err := app.Update(cmd.Context(), args[0], req)
		if err != nil {
			return fmt.Errorf("failed to update credential: %w", err)
		}

		color.Green("Updated %s / %s.", meta.ServiceName, meta.Username)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateService, "service", "s", "", "new service name")
	UpdateCmd.Flags().StringVarP(&updateUsername, "username", "u", "", "new username")
	UpdateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "new category label")
	UpdateCmd.Flags().BoolVar(&updateSecret, "secret", false, "prompt for a new secret")
}
