package cli

import (
	"fmt"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/nutrition"

	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"
)

var demoCount int

// demoCmd seeds the local catalog with generated foods so the client can be
// tried out without a service or any manual data entry.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed the local catalog with sample foods",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		app.Foods.Load(cmd.Context())

		fake := faker.New()
		categories := []models.Category{
			models.CategoryProtein, models.CategoryCarbs, models.CategoryFats,
			models.CategoryVegetables, models.CategoryFruits, models.CategoryDairy,
		}

		var added int
		for i := 0; i < demoCount; i++ {
			category := categories[i%len(categories)]
			var name string
			switch category {
			case models.CategoryFruits:
				name = fake.Food().Fruit()
			case models.CategoryVegetables:
				name = fake.Food().Vegetable()
			default:
				name = fake.Lorem().Word() + " " + string(category)
			}

			food, err := models.NewFood(name,
				nutrition.Round1(fake.Float64(1, 20, 400)),
				nutrition.Round1(fake.Float64(1, 0, 40)),
				nutrition.Round1(fake.Float64(1, 0, 60)),
				nutrition.Round1(fake.Float64(1, 0, 30)),
				nutrition.Round1(fake.Float64(1, 0, 10)),
				100, models.UnitGrams, category)
			if err != nil {
				return err
			}
			if _, err := app.Foods.Add(cmd.Context(), food); err != nil {
				return err
			}
			added++
		}

		fmt.Printf("Seeded %d sample foods.\n", added)
		return nil
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoCount, "count", 12, "number of foods to generate")
	rootCmd.AddCommand(demoCmd)
}
