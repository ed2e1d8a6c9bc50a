package fav

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	toggleCmd = &cobra.Command{
		Use:   "toggle [noticeId]",
		Short: "Adds or removes a notice from the favorite set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hub.RequireSession()
			if err != nil {
				return err
			}
			favs, err := hub.ToggleFavorite(s.ID, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Favorites: %d\n", len(favs))
			return nil
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists the favorite notices of the logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hub.RequireSession()
			if err != nil {
				return err
			}

			favs := hub.Favorites(s.ID)
			if len(favs) == 0 {
				fmt.Println("No favorites.")
				return nil
			}

			// resolve titles where the notice still exists
			titles := make(map[string]string)
			for _, n := range hub.ListNotices() {
				titles[n.ID] = n.Title
			}

			for _, id := range favs {
				if title, ok := titles[id]; ok {
					fmt.Printf("[%s] %s\n", id, title)
				} else {
					fmt.Printf("[%s] (deleted notice)\n", id)
				}
			}
			return nil
		},
	}
)
