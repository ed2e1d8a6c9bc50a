package notice

import (
	"github.com/noticehub/noticehub/cmd/util"
	"github.com/noticehub/noticehub/lib/board"
	"github.com/spf13/cobra"
)

var (
	hub board.IBoard

	// NoticeCommands represents the notice management command group
	NoticeCommands = &cobra.Command{
		Use:               "notice",
		Short:             "Manage the notices on the board",
		PersistentPreRunE: setupBoard,
	}
)

func init() {
	// Add Flags for list command
	listCmd.Flags().Bool("all", false, util.WrapString("Include unpublished notices (default for teachers)"))

	// Add subcommands
	NoticeCommands.AddCommand(addCmd)
	NoticeCommands.AddCommand(listCmd)
	NoticeCommands.AddCommand(publishCmd)
	NoticeCommands.AddCommand(rmCmd)
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
