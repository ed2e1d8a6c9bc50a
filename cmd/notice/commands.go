package notice

import (
	"fmt"

	"github.com/noticehub/noticehub/lib/board"
	"github.com/spf13/cobra"
)

var (
	addCmd = &cobra.Command{
		Use:   "add [title] [body]",
		Short: "Adds an unpublished notice (teacher only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _ := hub.CurrentSession()
			if _, err := hub.AddNotice(s, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Notice added (unpublished).")
			return nil
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists notices, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			// teachers see drafts, students only what is published
			s, ok := hub.CurrentSession()
			showAll := all || (ok && s.Role == board.RoleTeacher)

			var favs []string
			if ok {
				favs = hub.Favorites(s.ID)
			}

			count := 0
			for _, n := range hub.ListNotices() {
				if !showAll && !n.Published {
					continue
				}
				count++

				state := "published"
				if !n.Published {
					state = "draft"
				}
				marker := " "
				if isFavorite(favs, n.ID) {
					marker = "*"
				}
				fmt.Printf("%s [%s] %s by %s (%s, %s)\n", marker, n.ID, n.Title, n.AuthorName, state, board.FormatDate(n.CreatedAt))
				if n.Body != "" {
					fmt.Printf("    %s\n", n.Body)
				}
			}
			if count == 0 {
				fmt.Println("No notices.")
			}
			return nil
		},
	}
	publishCmd = &cobra.Command{
		Use:   "publish [id]",
		Short: "Toggles the published state of a notice (teacher only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _ := hub.CurrentSession()
			n, err := hub.TogglePublish(s, args[0])
			if err != nil {
				return err
			}
			if n.Published {
				fmt.Println("Published.")
			} else {
				fmt.Println("Unpublished.")
			}
			return nil
		},
	}
	rmCmd = &cobra.Command{
		Use:   "rm [id]",
		Short: "Deletes a notice (teacher only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _ := hub.CurrentSession()
			if err := hub.DeleteNotice(s, args[0]); err != nil {
				return err
			}
			fmt.Println("Notice deleted.")
			return nil
		},
	}
)

func isFavorite(favs []string, id string) bool {
	for _, f := range favs {
		if f == id {
			return true
		}
	}
	return false
}
