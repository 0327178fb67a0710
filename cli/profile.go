package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"
	"github.com/Sorin-PSP/EatWise-sub000/unitconv"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile and goals",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile, in its preferred measurement system",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		p, err := app.Client.GetProfile(cmd.Context())
		if err != nil {
			return err
		}

		system := unitconv.Metric
		weightUnit, heightUnit := "kg", "cm"
		if p.System == models.SystemImperial {
			system = unitconv.Imperial
			weightUnit, heightUnit = "lb", "in"
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "name\t%s\n", p.DisplayName)
		fmt.Fprintf(w, "email\t%s\n", p.Email)
		fmt.Fprintf(w, "system\t%s\n", p.System)
		if p.Weight > 0 {
			weight, err := unitconv.WeightToDisplay(p.Weight, system)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "weight\t%.1f %s\n", weight, weightUnit)
		}
		if p.Height > 0 {
			height, err := unitconv.HeightToDisplay(p.Height, system)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "height\t%.1f %s\n", height, heightUnit)
		}
		if p.Age > 0 {
			fmt.Fprintf(w, "age\t%d\n", p.Age)
		}
		fmt.Fprintf(w, "calorie goal\t%.0f kcal\n", p.CalorieGoal)
		fmt.Fprintf(w, "protein goal\t%.1f g\n", p.ProteinGoal)
		fmt.Fprintf(w, "carb goal\t%.1f g\n", p.CarbGoal)
		fmt.Fprintf(w, "fat goal\t%.1f g\n", p.FatGoal)
		fmt.Fprintf(w, "fiber goal\t%.1f g\n", p.FiberGoal)
		fmt.Fprintf(w, "water goal\t%.0f glasses\n", p.WaterGoal)
		return w.Flush()
	},
}

var (
	profDisplayName string
	profSystem      string
	profWeight      float64
	profHeight      float64
	profAge         int
	profGender      string
	profActivity    string
	profGoal        string
	profCalorieGoal float64
	profProteinGoal float64
	profCarbGoal    float64
	profFatGoal     float64
	profFiberGoal   float64
	profWaterGoal   float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields and goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		input := services.ProfileInput{
			DisplayName:   profDisplayName,
			System:        profSystem,
			Weight:        profWeight,
			Height:        profHeight,
			Age:           profAge,
			Gender:        profGender,
			ActivityLevel: profActivity,
			Goal:          profGoal,
		}
		flags := cmd.Flags()
		if flags.Changed("calorie-goal") {
			input.CalorieGoal = &profCalorieGoal
		}
		if flags.Changed("protein-goal") {
			input.ProteinGoal = &profProteinGoal
		}
		if flags.Changed("carb-goal") {
			input.CarbGoal = &profCarbGoal
		}
		if flags.Changed("fat-goal") {
			input.FatGoal = &profFatGoal
		}
		if flags.Changed("fiber-goal") {
			input.FiberGoal = &profFiberGoal
		}
		if flags.Changed("water-goal") {
			input.WaterGoal = &profWaterGoal
		}

		if _, err := app.Client.UpsertProfile(cmd.Context(), input); err != nil {
			return err
		}
		fmt.Println("Profile updated.")
		return nil
	},
}

var profileSuggestCmd = &cobra.Command{
	Use:   "suggest-goals",
	Short: "Suggest daily goals from your body data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		s, err := app.Client.SuggestGoals(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("BMI %.1f (%s)\n", s.BMI, s.BMICategory)
		fmt.Printf("Suggested: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
			s.Calories, s.Protein, s.Carbs, s.Fat)
		fmt.Println("Apply with: eatwise profile set --calorie-goal ... --protein-goal ...")
		return nil
	},
}

func init() {
	f := profileSetCmd.Flags()
	f.StringVar(&profDisplayName, "name", "", "display name")
	f.StringVar(&profSystem, "system", "", "measurement system (metric, imperial)")
	f.Float64Var(&profWeight, "weight", 0, "weight in kg")
	f.Float64Var(&profHeight, "height", 0, "height in cm")
	f.IntVar(&profAge, "age", 0, "age in years")
	f.StringVar(&profGender, "gender", "", "gender (male, female)")
	f.StringVar(&profActivity, "activity", "", "activity level (sedentary, light, moderate, active, very-active)")
	f.StringVar(&profGoal, "goal", "", "goal (lose, maintain, gain)")
	f.Float64Var(&profCalorieGoal, "calorie-goal", 0, "daily calorie goal (kcal)")
	f.Float64Var(&profProteinGoal, "protein-goal", 0, "daily protein goal (g)")
	f.Float64Var(&profCarbGoal, "carb-goal", 0, "daily carb goal (g)")
	f.Float64Var(&profFatGoal, "fat-goal", 0, "daily fat goal (g)")
	f.Float64Var(&profFiberGoal, "fiber-goal", 0, "daily fiber goal (g)")
	f.Float64Var(&profWaterGoal, "water-goal", 0, "daily water goal (glasses)")

	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileSuggestCmd)
	rootCmd.AddCommand(profileCmd)
}
