package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/models"

	"github.com/spf13/cobra"
)

var logDate string

func today() string {
	return time.Now().Format("2006-01-02")
}

func resolveDate() (string, error) {
	if logDate == "" {
		return today(), nil
	}
	if !models.ValidDate(logDate) {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", logDate)
	}
	return logDate, nil
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the daily meal log",
}

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the log for a day",
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
		app.Days.Load(cmd.Context(), date)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, meal := range models.MealTypes() {
			entries := app.Days.Entries(date, meal)
			if len(entries) == 0 {
				continue
			}
			fmt.Fprintf(w, "%s\t\t\t\n", strings.ToUpper(string(meal)))
			for _, e := range entries {
				fmt.Fprintf(w, "  %s\t%.0f %s\t%.0f kcal\t%s\n",
					e.FoodName, e.Quantity, e.Unit, e.Calories, e.ID)
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}

		t := app.Days.Totals(date)
		fmt.Printf("\n%s: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat, %.1fg fiber\n",
			date, t.Calories, t.Protein, t.Carbs, t.Fat, t.Fiber)
		return nil
	},
}

var (
	logAddMeal    string
	logRemoveMeal string
	logQuantity   float64
)

var logAddCmd = &cobra.Command{
	Use:   "add <food-id-or-name>",
	Short: "Log a food for a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		date, err := resolveDate()
		if err != nil {
			return err
		}
		meal, err := models.ParseMealType(logAddMeal)
		if err != nil {
			return err
		}

		app.Foods.Load(cmd.Context())
		app.Days.Load(cmd.Context(), date)

		food, ok := app.Foods.Find(args[0])
		if !ok {
			food, ok = findFoodByName(app, args[0])
		}
		if !ok {
			return fmt.Errorf("no catalog food matches %q", args[0])
		}

		entry, err := app.Days.AddEntry(cmd.Context(), date, meal, food, logQuantity)
		if err != nil {
			return err
		}
		fmt.Printf("Logged %.0f %s of %s (%.0f kcal) for %s.\n",
			entry.Quantity, entry.Unit, entry.FoodName, entry.Calories, entry.MealType)
		return nil
	},
}

func findFoodByName(app *App, name string) (models.Food, bool) {
	for _, f := range app.Foods.Foods() {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return models.Food{}, false
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove a log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		date, err := resolveDate()
		if err != nil {
			return err
		}
		meal, err := models.ParseMealType(logRemoveMeal)
		if err != nil {
			return err
		}
		app.Days.Load(cmd.Context(), date)

		found, err := app.Days.RemoveEntry(cmd.Context(), date, meal, args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no entry %s on %s", args[0], date)
		}
		fmt.Println("Removed.")
		return nil
	},
}

var logTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show nutrient totals for a day",
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
		app.Days.Load(cmd.Context(), date)

		t := app.Days.Totals(date)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "calories\t%.0f kcal\n", t.Calories)
		fmt.Fprintf(w, "protein\t%.1f g\n", t.Protein)
		fmt.Fprintf(w, "carbs\t%.1f g\n", t.Carbs)
		fmt.Fprintf(w, "fat\t%.1f g\n", t.Fat)
		fmt.Fprintf(w, "fiber\t%.1f g\n", t.Fiber)
		return w.Flush()
	},
}

func init() {
	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "day to operate on (YYYY-MM-DD, default today)")
	logAddCmd.Flags().StringVar(&logAddMeal, "meal", "breakfast", "meal bucket (breakfast, lunch, dinner, snacks)")
	logAddCmd.Flags().Float64Var(&logQuantity, "quantity", 100, "quantity in the food's unit")
	logRemoveCmd.Flags().StringVar(&logRemoveMeal, "meal", "all", "meal bucket to search, or all")
	logCmd.AddCommand(logShowCmd, logAddCmd, logRemoveCmd, logTotalsCmd)
	rootCmd.AddCommand(logCmd)
}
