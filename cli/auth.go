package cli

import (
	"fmt"
	"syscall"

	"github.com/Sorin-PSP/EatWise-sub000/localcache"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in to the EatWise service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		session, err := app.Client.SignIn(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		if err := app.Cache.Put(localcache.KeySession, session); err != nil {
			return err
		}

		fmt.Printf("Signed in as %s\n", session.Email)

		// push anything that was logged while signed out
		app.Days.Load(cmd.Context(), today())
		app.Sync.Push(cmd.Context())
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <email> <display-name>",
	Short: "Create an EatWise account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		if err := app.Client.SignUp(cmd.Context(), args[0], password, args[1]); err != nil {
			return err
		}
		fmt.Println("Account created. Run `eatwise login` to sign in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and drop the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		app.Client.SignOut()
		if err := app.Cache.Delete(localcache.KeySession); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd)
}
