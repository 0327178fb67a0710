package unitconv

import (
	"errors"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	for _, tc := range []struct {
		name     string
		value    float64
		from, to System
		dim      Dimension
		want     float64
	}{
		{"kg to lb", 70, Metric, Imperial, Weight, 154.3},
		{"lb to kg", 154.3, Imperial, Metric, Weight, 70.0},
		{"cm to in", 170, Metric, Imperial, Height, 66.9},
		{"in to cm", 66.9, Imperial, Metric, Height, 169.9},
		{"ml to fl-oz", 500, Metric, Imperial, Volume, 16.9},
		{"fl-oz to ml", 16.9, Imperial, Metric, Volume, 499.8},
		{"zero", 0, Metric, Imperial, Weight, 0},
		{"same system rounds only", 70.25, Metric, Metric, Weight, 70.3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.value, tc.from, tc.to, tc.dim, DefaultDecimals)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if got != tc.want {
				t.Errorf("Convert(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	for _, tc := range []struct {
		name     string
		value    float64
		from, to System
		dim      Dimension
	}{
		{"negative", -1, Metric, Imperial, Weight},
		{"nan", math.NaN(), Metric, Imperial, Weight},
		{"positive inf", math.Inf(1), Metric, Imperial, Height},
		{"negative inf", math.Inf(-1), Imperial, Metric, Volume},
		{"bad from system", 10, System("nautical"), Metric, Weight},
		{"bad to system", 10, Metric, System(""), Weight},
		{"bad dimension", 10, Metric, Imperial, Dimension("mass")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.value, tc.from, tc.to, tc.dim, DefaultDecimals)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Convert = (%v, %v), want ErrInvalidInput", got, err)
			}
			if got != 0 {
				t.Errorf("Convert returned %v alongside an error, want 0", got)
			}
		})
	}
}

// A metric value should survive a round trip through imperial to within the
// rounding granularity, at realistic magnitudes.
func TestConvertRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		dim Dimension
		tol float64
	}{
		{Weight, 0.05},
		{Height, 0.3},
		{Volume, 1.5},
	} {
		for _, v := range []float64{0.5, 1, 42, 70, 170, 500, 2000} {
			out, err := Convert(v, Metric, Imperial, tc.dim, 2)
			if err != nil {
				t.Fatalf("%s: forward: %v", tc.dim, err)
			}
			back, err := Convert(out, Imperial, Metric, tc.dim, 2)
			if err != nil {
				t.Fatalf("%s: back: %v", tc.dim, err)
			}
			if math.Abs(back-v) > tc.tol {
				t.Errorf("%s: %v -> %v -> %v, drift %v", tc.dim, v, out, back, math.Abs(back-v))
			}
		}
	}
}

func TestDisplayHelpers(t *testing.T) {
	if got, _ := WeightToDisplay(70, Imperial); got != 154.3 {
		t.Errorf("WeightToDisplay(70, imperial) = %v, want 154.3", got)
	}
	if got, _ := WeightToDisplay(70, Metric); got != 70 {
		t.Errorf("WeightToDisplay(70, metric) = %v, want 70", got)
	}
	if got, _ := HeightToDisplay(180, Imperial); got != 70.9 {
		t.Errorf("HeightToDisplay(180, imperial) = %v, want 70.9", got)
	}
	if got, _ := VolumeToDisplay(250, Imperial); got != 8.5 {
		t.Errorf("VolumeToDisplay(250, imperial) = %v, want 8.5", got)
	}
}
