package user

import (
	"github.com/noticehub/noticehub/cmd/util"
	"github.com/noticehub/noticehub/lib/board"
	"github.com/spf13/cobra"
)

var (
	hub board.IBoard

	// UserCommands represents the user administration command group
	UserCommands = &cobra.Command{
		Use:               "user",
		Short:             "User administration (teacher only)",
		PersistentPreRunE: setupBoard,
	}
)

func init() {
	// Add subcommands
	UserCommands.AddCommand(listCmd)
	UserCommands.AddCommand(rmCmd)
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
