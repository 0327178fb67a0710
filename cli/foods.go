package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Manage the food catalog",
}

var foodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog foods",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		app.Foods.Load(cmd.Context())

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSERVING\tKCAL\tPROTEIN\tCARBS\tFAT")
		for _, f := range app.Foods.Foods() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.0f %s\t%.0f\t%.1f\t%.1f\t%.1f\n",
				f.ID, f.Name, f.Category, f.Serving, f.Unit,
				f.Calories, f.Protein, f.Carbs, f.Fat)
		}
		return w.Flush()
	},
}

var (
	foodName     string
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodFiber    float64
	foodServing  float64
	foodUnit     string
	foodCategory string
)

var foodsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		app.Foods.Load(cmd.Context())

		unit, err := models.ParseUnit(foodUnit)
		if err != nil {
			return err
		}
		category, err := models.ParseCategory(foodCategory)
		if err != nil {
			return err
		}
		food, err := models.NewFood(foodName, foodCalories, foodProtein,
			foodCarbs, foodFat, foodFiber, foodServing, unit, category)
		if err != nil {
			return err
		}

		added, err := app.Foods.Add(cmd.Context(), food)
		if err != nil {
			return err
		}
		if models.IsLocalID(added.ID) {
			fmt.Printf("Added %q locally (id %s); it will sync when you sign in.\n", added.Name, added.ID)
		} else {
			fmt.Printf("Added %q (id %s).\n", added.Name, added.ID)
		}
		return nil
	},
}

var foodsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a catalog food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		app.Foods.Load(cmd.Context())

		var patch services.FoodPatch
		flags := cmd.Flags()
		if flags.Changed("name") {
			patch.Name = &foodName
		}
		if flags.Changed("calories") {
			patch.Calories = &foodCalories
		}
		if flags.Changed("protein") {
			patch.Protein = &foodProtein
		}
		if flags.Changed("carbs") {
			patch.Carbs = &foodCarbs
		}
		if flags.Changed("fat") {
			patch.Fat = &foodFat
		}
		if flags.Changed("fiber") {
			patch.Fiber = &foodFiber
		}
		if flags.Changed("serving") {
			patch.Serving = &foodServing
		}
		if flags.Changed("unit") {
			unit, err := models.ParseUnit(foodUnit)
			if err != nil {
				return err
			}
			patch.Unit = &unit
		}
		if flags.Changed("category") {
			category, err := models.ParseCategory(foodCategory)
			if err != nil {
				return err
			}
			patch.Category = &category
		}

		updated, err := app.Foods.Update(cmd.Context(), args[0], patch)
		if err != nil {
			// local copy may still have been updated; say so
			if _, ok := app.Foods.Find(args[0]); ok {
				fmt.Fprintf(os.Stderr, "warning: saved locally but not on the service: %v\n", err)
				return nil
			}
			return err
		}
		fmt.Printf("Updated %q.\n", updated.Name)
		return nil
	},
}

var foodsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalog food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		app.Foods.Load(cmd.Context())

		if err := app.Foods.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// foodsImportCmd bulk-loads a CSV of
// name,calories,protein,carbs,fat,fiber,serving,unit,category rows.
var foodsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import foods from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		app.Foods.Load(cmd.Context())

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		if len(rows) > 0 && len(rows[0]) > 0 && rows[0][0] == "name" {
			rows = rows[1:] // header
		}

		bar := progressbar.Default(int64(len(rows)), "importing")
		var failed int
		for i, row := range rows {
			food, err := parseFoodRow(row)
			if err == nil {
				_, err = app.Foods.Add(cmd.Context(), food)
			}
			if err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "row %d: %v\n", i+1, err)
			}
			bar.Add(1)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d rows failed", failed, len(rows))
		}
		fmt.Printf("Imported %d foods.\n", len(rows))
		return nil
	},
}

func parseFoodRow(row []string) (models.Food, error) {
	if len(row) != 9 {
		return models.Food{}, fmt.Errorf("want 9 columns, got %d", len(row))
	}
	nums := make([]float64, 6)
	for i, col := range row[1:7] {
		v, err := strconv.ParseFloat(col, 64)
		if err != nil {
			return models.Food{}, fmt.Errorf("column %d: %w", i+2, err)
		}
		nums[i] = v
	}
	unit, err := models.ParseUnit(row[7])
	if err != nil {
		return models.Food{}, err
	}
	category, err := models.ParseCategory(row[8])
	if err != nil {
		return models.Food{}, err
	}
	return models.NewFood(row[0], nums[0], nums[1], nums[2], nums[3], nums[4], nums[5], unit, category)
}

func addFoodFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&foodName, "name", "", "food name")
	cmd.Flags().Float64Var(&foodCalories, "calories", 0, "calories per serving")
	cmd.Flags().Float64Var(&foodProtein, "protein", 0, "protein grams per serving")
	cmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "carb grams per serving")
	cmd.Flags().Float64Var(&foodFat, "fat", 0, "fat grams per serving")
	cmd.Flags().Float64Var(&foodFiber, "fiber", 0, "fiber grams per serving")
	cmd.Flags().Float64Var(&foodServing, "serving", 100, "serving size")
	cmd.Flags().StringVar(&foodUnit, "unit", "g", "serving unit (g, ml, oz, lb, fl-oz, cup)")
	cmd.Flags().StringVar(&foodCategory, "category", "other", "food category")
}

func init() {
	addFoodFlags(foodsAddCmd)
	addFoodFlags(foodsUpdateCmd)
	foodsCmd.AddCommand(foodsListCmd, foodsAddCmd, foodsUpdateCmd, foodsDeleteCmd, foodsImportCmd)
	rootCmd.AddCommand(foodsCmd)
}
