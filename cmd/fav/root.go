package fav

import (
	"github.com/noticehub/noticehub/cmd/util"
	"github.com/noticehub/noticehub/lib/board"
	"github.com/spf13/cobra"
)

var (
	hub board.IBoard

	// FavoriteCommands represents the favorites command group
	FavoriteCommands = &cobra.Command{
		Use:               "fav",
		Short:             "Manage the favorite set of the logged in account",
		PersistentPreRunE: setupBoard,
	}
)

func init() {
	// Add subcommands
	FavoriteCommands.AddCommand(toggleCmd)
	FavoriteCommands.AddCommand(listCmd)
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
