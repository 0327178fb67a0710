// Package unitconv converts weight, height and volume values between the
// metric and imperial measurement systems with fixed ratios.
package unitconv

import (
	"errors"
	"fmt"
	"math"
)

type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

type Dimension string

const (
	Weight Dimension = "weight" // kg ↔ lb
	Height Dimension = "height" // cm ↔ in
	Volume Dimension = "volume" // ml ↔ fl-oz
)

const (
	PoundsPerKilogram        = 2.20462
	CentimetersPerInch       = 2.54
	MillilitersPerFluidOunce = 29.5735
)

// ErrInvalidInput is returned for NaN, infinite or negative values.
var ErrInvalidInput = errors.New("unitconv: invalid input")

// DefaultDecimals is the rounding applied when callers do not choose one.
const DefaultDecimals = 1

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Convert translates value between measurement systems for one dimension,
// rounding the result to the given number of decimals. Identity (modulo
// rounding) when from == to. Negative and non-finite input is rejected.
func Convert(value float64, from, to System, dim Dimension, decimals int) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, value)
	}
	if from != Metric && from != Imperial {
		return 0, fmt.Errorf("%w: unknown system %q", ErrInvalidInput, from)
	}
	if to != Metric && to != Imperial {
		return 0, fmt.Errorf("%w: unknown system %q", ErrInvalidInput, to)
	}
	if from == to {
		return roundTo(value, decimals), nil
	}

	var ratio float64
	switch dim {
	case Weight:
		ratio = PoundsPerKilogram
	case Height:
		ratio = 1 / CentimetersPerInch
	case Volume:
		ratio = 1 / MillilitersPerFluidOunce
	default:
		return 0, fmt.Errorf("%w: unknown dimension %q", ErrInvalidInput, dim)
	}

	if from == Metric {
		return roundTo(value*ratio, decimals), nil
	}
	return roundTo(value/ratio, decimals), nil
}

// WeightToDisplay converts a stored metric weight (kg) into the user's
// preferred system with the default rounding.
func WeightToDisplay(kg float64, system System) (float64, error) {
	return Convert(kg, Metric, system, Weight, DefaultDecimals)
}

// HeightToDisplay converts a stored metric height (cm) likewise.
func HeightToDisplay(cm float64, system System) (float64, error) {
	return Convert(cm, Metric, system, Height, DefaultDecimals)
}

// VolumeToDisplay converts a stored metric volume (ml) likewise.
func VolumeToDisplay(ml float64, system System) (float64, error) {
	return Convert(ml, Metric, system, Volume, DefaultDecimals)
}
