package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/VictoriaMetrics/metrics"
	"github.com/noticehub/noticehub/cmd/auth"
	"github.com/noticehub/noticehub/cmd/fav"
	"github.com/noticehub/noticehub/cmd/notice"
	"github.com/noticehub/noticehub/cmd/perf"
	"github.com/noticehub/noticehub/cmd/user"
	"github.com/noticehub/noticehub/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.2.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "noticehub",
		Short: "single-tenant notice board",
		Long: fmt.Sprintf(`NoticeHub (v%s)

A notice-board for a single class: teachers post and publish notices,
students read them and keep favorites. All data lives in a local
key-value snapshot file.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of NoticeHub",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("NoticeHub v%s\n", Version)
		},
	}

	// statsCmd dumps store info and the process-local operation counters
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print information about the data snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.BindCommandFlags(cmd); err != nil {
				return err
			}

			_, s, err := util.OpenBoard()
			if err != nil {
				return err
			}

			info, err := s.GetDBInfo()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			fmt.Println()
			metrics.WritePrometheus(os.Stdout, false)
			return nil
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(auth.AuthCommands)
	RootCmd.AddCommand(notice.NoticeCommands)
	RootCmd.AddCommand(fav.FavoriteCommands)
	RootCmd.AddCommand(user.UserCommands)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupStoreFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
