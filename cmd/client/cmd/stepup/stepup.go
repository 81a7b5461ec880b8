package stepup

import (
	"context"
	"fmt"
	"os"

	"passvault/cmd/client/cmd/types"
	"passvault/internal/app/client"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// StepupCmd is the parent command for the secondary password gate.
var StepupCmd = &cobra.Command{
	Use:   "stepup",
	Short: "Secondary password gate",
	Long: `Manage the optional secondary password that guards secret reveals.

Once verified, the secondary password is remembered for a configurable
window so repeated reveals do not re-prompt.`,
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
