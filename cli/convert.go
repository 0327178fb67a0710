package cli

import (
	"fmt"
	"strconv"

	"github.com/Sorin-PSP/EatWise-sub000/unitconv"

	"github.com/spf13/cobra"
)

var (
	convertFrom string
	convertTo   string
	convertDim  string
)

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a measurement between metric and imperial",
	Long: `Convert a weight, height or volume between measurement systems.

  eatwise convert 70 --dimension weight --from metric --to imperial`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", args[0])
		}

		var dim unitconv.Dimension
		switch convertDim {
		case "weight":
			dim = unitconv.Weight
		case "height":
			dim = unitconv.Height
		case "volume":
			dim = unitconv.Volume
		default:
			return fmt.Errorf("unknown dimension %q, want weight, height or volume", convertDim)
		}

		from, to := unitconv.System(convertFrom), unitconv.System(convertTo)
		out, err := unitconv.Convert(value, from, to, dim, unitconv.DefaultDecimals)
		if err != nil {
			return err
		}

		units := map[unitconv.Dimension][2]string{
			unitconv.Weight: {"kg", "lb"},
			unitconv.Height: {"cm", "in"},
			unitconv.Volume: {"ml", "fl-oz"},
		}[dim]
		fromUnit, toUnit := units[0], units[1]
		if from == unitconv.Imperial {
			fromUnit, toUnit = units[1], units[0]
		}
		if from == to {
			toUnit = fromUnit
		}
		fmt.Printf("%.1f %s = %.1f %s\n", value, fromUnit, out, toUnit)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "metric", "source system (metric, imperial)")
	convertCmd.Flags().StringVar(&convertTo, "to", "imperial", "target system (metric, imperial)")
	convertCmd.Flags().StringVar(&convertDim, "dimension", "weight", "dimension (weight, height, volume)")
	rootCmd.AddCommand(convertCmd)
}
