package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push locally logged entries to the service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if !app.Client.Authenticated() {
			return fmt.Errorf("not signed in, run `eatwise login` first")
		}

		app.Days.Load(cmd.Context(), today())
		locals := app.Days.LocalEntries()
		if len(locals) == 0 {
			fmt.Println("Nothing to sync.")
			return nil
		}

		app.Sync.Push(cmd.Context())

		remaining := len(app.Days.LocalEntries())
		fmt.Printf("Pushed %d of %d local entries.\n", len(locals)-remaining, len(locals))
		if remaining > 0 {
			fmt.Printf("%d entries still local; run sync again later.\n", remaining)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
