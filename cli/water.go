package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water [glasses]",
	Short: "Show or set today's water intake",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		date, err := resolveDate()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			glasses, err := app.Water.Get(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %.0f glasses\n", date, glasses)
			return nil
		}

		glasses, err := strconv.ParseFloat(args[0], 64)
		if err != nil || glasses < 0 {
			return fmt.Errorf("invalid glass count %q", args[0])
		}
		if err := app.Water.Set(cmd.Context(), date, glasses); err != nil {
			return err
		}
		fmt.Printf("%s: %.0f glasses\n", date, glasses)
		return nil
	},
}

func init() {
	waterCmd.Flags().StringVar(&logDate, "date", "", "day to operate on (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(waterCmd)
}
