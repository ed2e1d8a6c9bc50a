package user

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users := hub.ListUsers()
			if len(users) == 0 {
				fmt.Println("No users.")
				return nil
			}

			// passwords are stored in plain text and must never be printed
			for _, u := range users {
				fmt.Printf("[%s] %-8s %s <%s>\n", u.ID, u.Role, u.Name, u.Email)
			}
			return nil
		},
	}
	rmCmd = &cobra.Command{
		Use:   "rm [id]",
		Short: "Deletes an account by id (teacher only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _ := hub.CurrentSession()
			if err := hub.DeleteUser(s, args[0]); err != nil {
				return err
			}
			fmt.Println("User deleted.")
			return nil
		},
	}
)
