// Package nutrition holds the arithmetic shared by the API service and the
// client stores: scaling a food's per-serving nutrients to a logged quantity
// and summing a day's log into one totals record.
package nutrition

import (
	"math"

	"github.com/Sorin-PSP/EatWise-sub000/models"
)

// Totals is one day's (or one snapshot's) nutrient sums.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

func (t *Totals) add(e models.LogEntry) {
	t.Calories += e.Calories
	t.Protein += e.Protein
	t.Carbs += e.Carbs
	t.Fat += e.Fat
	t.Fiber += e.Fiber
}

// RoundTo rounds v to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Round1 is the fixed 1-decimal rounding used for nutrient values.
func Round1(v float64) float64 { return RoundTo(v, 1) }

// Snapshot scales a food's per-serving nutrients to quantity, in the food's
// own unit. Calories are rounded to the nearest integer, the macros to one
// decimal. The result is frozen onto the log entry; later edits to the food
// never touch it.
func Snapshot(food models.Food, quantity float64) Totals {
	if food.Serving <= 0 || quantity < 0 {
		return Totals{}
	}
	ratio := quantity / food.Serving
	return Totals{
		Calories: math.Round(food.Calories * ratio),
		Protein:  Round1(food.Protein * ratio),
		Carbs:    Round1(food.Carbs * ratio),
		Fat:      Round1(food.Fat * ratio),
		Fiber:    Round1(food.Fiber * ratio),
	}
}

// DailyTotals sums every entry across the four meal buckets for date.
// A missing date or bucket contributes zero. Pure and order-independent.
func DailyTotals(log models.DailyLog, date string) Totals {
	var t Totals
	buckets, ok := log[date]
	if !ok {
		return t
	}
	for _, mt := range models.MealTypes() {
		for _, e := range buckets[mt] {
			t.add(e)
		}
	}
	return t
}

// SumEntries is DailyTotals over a flat entry list, used server-side where
// the day's entries come back as one query result.
func SumEntries(entries []models.LogEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.add(e)
	}
	return t
}
