package cmd

import (
	"passvault/cmd/client/cmd/auth"
	"passvault/cmd/client/cmd/stepup"
	"passvault/cmd/client/cmd/vault"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.ChangePasswordCmd)

	rootCmd.AddCommand(vault.VaultCmd)
	vault.VaultCmd.AddCommand(vault.ListCmd)
	vault.VaultCmd.AddCommand(vault.AddCmd)
	vault.VaultCmd.AddCommand(vault.ShowCmd)
	vault.VaultCmd.AddCommand(vault.UpdateCmd)
	vault.VaultCmd.AddCommand(vault.RmCmd)
	vault.VaultCmd.AddCommand(vault.TrashCmd)
	vault.VaultCmd.AddCommand(vault.RestoreCmd)
	vault.VaultCmd.AddCommand(vault.PurgeCmd)

	rootCmd.AddCommand(stepup.StepupCmd)
	stepup.StepupCmd.AddCommand(stepup.StatusCmd)
	stepup.StepupCmd.AddCommand(stepup.EnableCmd)
	stepup.StepupCmd.AddCommand(stepup.DisableCmd)
	stepup.StepupCmd.AddCommand(stepup.RememberCmd)
	stepup.StepupCmd.AddCommand(stepup.LockCmd)
}
