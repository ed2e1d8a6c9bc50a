package auth

import (
	"fmt"

	"github.com/noticehub/noticehub/lib/board"
	"github.com/spf13/cobra"
)

var (
	registerCmd = &cobra.Command{
		Use:   "register [name] [email] [password] [role]",
		Short: "Creates a new account (role: teacher or student)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := board.ParseRole(args[3])
			if err != nil {
				return err
			}
			if _, err := hub.Register(args[0], args[1], args[2], role); err != nil {
				return err
			}
			fmt.Println("Registration successful. Now login.")
			return nil
		},
	}
	loginCmd = &cobra.Command{
		Use:   "login [email] [password]",
		Short: "Logs in and stores the session in the snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hub.Login(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Login successful. Hello %s (%s).\n", s.Name, s.Role)
			return nil
		},
	}
	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Clears the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := hub.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
	whoamiCmd = &cobra.Command{
		Use:   "whoami",
		Short: "Shows the currently logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := hub.CurrentSession()
			if !ok {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("%s <%s> (%s)\n", s.Name, s.Email, s.Role)
			return nil
		},
	}
	updateProfileCmd = &cobra.Command{
		Use:   "update-profile [name] [email]",
		Short: "Changes name and email of the logged in account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hub.RequireSession()
			if err != nil {
				return err
			}
			if _, err := hub.UpdateProfile(s, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}
	passwdCmd = &cobra.Command{
		Use:   "passwd [old] [new]",
		Short: "Changes the password of the logged in account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hub.RequireSession()
			if err != nil {
				return err
			}
			if err := hub.ChangePassword(s, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Password changed.")
			return nil
		},
	}
	deleteAccountCmd = &cobra.Command{
		Use:   "delete-account",
		Short: "Deletes the logged in account and all its notices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hub.RequireSession()
			if err != nil {
				return err
			}
			if err := hub.DeleteOwnAccount(s); err != nil {
				return err
			}
			fmt.Println("Account deleted.")
			return nil
		},
	}
)
