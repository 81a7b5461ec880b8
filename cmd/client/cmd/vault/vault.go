package vault

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"passvault/cmd/client/cmd/types"
	"passvault/internal/app/client"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// VaultCmd is the parent command for credential operations.
var VaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Credential management",
	Long:  `Store, list, reveal, update and delete service credentials.`,
}

func appFrom(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}

func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(secret), nil
}

func printMetaTable(metas []client.CredentialMeta, deletedColumn bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if deletedColumn {
		fmt.Fprintln(w, "ID\tSERVICE\tUSERNAME\tCATEGORY\tDELETED")
		for _, meta := range metas {
			deletedAt := ""
			if meta.DeletedAt != nil {
				deletedAt = meta.DeletedAt.Format("2006-01-02 15:04")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				meta.ID, meta.ServiceName, meta.Username, meta.Category, deletedAt)
		}
	} else {
		fmt.Fprintln(w, "ID\tSERVICE\tUSERNAME\tCATEGORY\tCREATED")
		for _, meta := range metas {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				meta.ID, meta.ServiceName, meta.Username, meta.Category,
				meta.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	w.Flush()
}
