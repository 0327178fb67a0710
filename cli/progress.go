package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/services"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show today's consumption against your goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		date, err := resolveDate()
		if err != nil {
			return err
		}

		p, err := app.Client.DailyProgress(cmd.Context(), date)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "NUTRIENT\tCONSUMED\tGOAL\t\n")
		printRing(w, "calories", p.Calories)
		printRing(w, "protein", p.Protein)
		printRing(w, "carbs", p.Carbs)
		printRing(w, "fat", p.Fat)
		printRing(w, "fiber", p.Fiber)
		printRing(w, "water", p.Water)
		return w.Flush()
	},
}

func printRing(w *tabwriter.Writer, name string, n services.NutrientProgress) {
	const width = 20
	filled := int(n.Percent * width)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	fmt.Fprintf(w, "%s\t%.0f\t%.0f\t[%s] %3.0f%%\n", name, n.Consumed, n.Goal, bar, n.Percent*100)
}

var summaryDays int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the nutrient trend over recent days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		to := today()
		from := time.Now().AddDate(0, 0, -(summaryDays - 1)).Format("2006-01-02")
		s, err := app.Client.Summary(cmd.Context(), from, to)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tKCAL\tPROTEIN\tCARBS\tFAT\tFIBER")
		for _, d := range s.Days {
			fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%.1f\n",
				d.Date, d.Totals.Calories, d.Totals.Protein, d.Totals.Carbs, d.Totals.Fat, d.Totals.Fiber)
		}
		fmt.Fprintf(w, "average\t%.0f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			s.Average.Calories, s.Average.Protein, s.Average.Carbs, s.Average.Fat, s.Average.Fiber)
		return w.Flush()
	},
}

func init() {
	progressCmd.Flags().StringVar(&logDate, "date", "", "day to report on (YYYY-MM-DD, default today)")
	summaryCmd.Flags().IntVar(&summaryDays, "days", 7, "number of trailing days")
	rootCmd.AddCommand(progressCmd, summaryCmd)
}
