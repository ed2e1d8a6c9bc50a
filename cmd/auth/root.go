package auth

import (
	"github.com/noticehub/noticehub/cmd/util"
	"github.com/noticehub/noticehub/lib/board"
	"github.com/spf13/cobra"
)

var (
	hub board.IBoard

	// AuthCommands represents the account and session command group
	AuthCommands = &cobra.Command{
		Use:               "auth",
		Short:             "Manage accounts and the login session",
		PersistentPreRunE: setupBoard,
	}
)

func init() {
	// Add subcommands
	AuthCommands.AddCommand(registerCmd)
	AuthCommands.AddCommand(loginCmd)
	AuthCommands.AddCommand(logoutCmd)
	AuthCommands.AddCommand(whoamiCmd)
	AuthCommands.AddCommand(updateProfileCmd)
	AuthCommands.AddCommand(passwdCmd)
	AuthCommands.AddCommand(deleteAccountCmd)
}

// setupBoard opens the board on the configured snapshot file
func setupBoard(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	hub, _, err = util.OpenBoard()
	return err
}
