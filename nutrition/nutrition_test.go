package nutrition

import (
	"testing"

	"github.com/Sorin-PSP/EatWise-sub000/models"
)

func chicken() models.Food {
	return models.Food{
		ID:       "f1",
		Name:     "Chicken Breast",
		Calories: 165,
		Protein:  31,
		Carbs:    0,
		Fat:      3.6,
		Fiber:    0,
		Serving:  100,
		Unit:     models.UnitGrams,
		Category: models.CategoryProtein,
	}
}

func TestSnapshot(t *testing.T) {
	for _, tc := range []struct {
		name     string
		quantity float64
		want     Totals
	}{
		{"one serving", 100, Totals{Calories: 165, Protein: 31, Fat: 3.6}},
		{"one and a half servings", 150, Totals{Calories: 248, Protein: 46.5, Fat: 5.4}},
		{"half serving", 50, Totals{Calories: 83, Protein: 15.5, Fat: 1.8}},
		{"zero quantity", 0, Totals{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Snapshot(chicken(), tc.quantity)
			if got != tc.want {
				t.Errorf("Snapshot(%v) = %+v, want %+v", tc.quantity, got, tc.want)
			}
		})
	}
}

func TestSnapshotDegenerateFood(t *testing.T) {
	f := chicken()
	f.Serving = 0
	if got := Snapshot(f, 100); got != (Totals{}) {
		t.Errorf("Snapshot with zero serving = %+v, want zero", got)
	}
	if got := Snapshot(chicken(), -5); got != (Totals{}) {
		t.Errorf("Snapshot with negative quantity = %+v, want zero", got)
	}
}

func entry(cal, protein, carbs, fat, fiber float64) models.LogEntry {
	return models.LogEntry{Calories: cal, Protein: protein, Carbs: carbs, Fat: fat, Fiber: fiber}
}

func TestDailyTotals(t *testing.T) {
	log := models.DailyLog{
		"2026-08-29": models.MealBuckets{
			models.MealBreakfast: {entry(300, 10, 40, 8, 3)},
			models.MealLunch:     {entry(500, 35, 45, 15, 6), entry(120, 2, 25, 0.5, 2)},
			models.MealDinner:    {entry(650, 40, 60, 20, 8)},
			models.MealSnacks:    {entry(200, 5, 30, 7, 1)},
		},
	}

	got := DailyTotals(log, "2026-08-29")
	want := Totals{Calories: 1770, Protein: 92, Carbs: 200, Fat: 50.5, Fiber: 20}
	if got != want {
		t.Errorf("DailyTotals = %+v, want %+v", got, want)
	}
}

func TestDailyTotalsMissingData(t *testing.T) {
	if got := DailyTotals(models.DailyLog{}, "2026-08-29"); got != (Totals{}) {
		t.Errorf("empty log: got %+v, want zero", got)
	}

	log := models.DailyLog{
		"2026-08-29": models.MealBuckets{
			models.MealLunch: {entry(500, 35, 45, 15, 6)},
		},
	}
	if got := DailyTotals(log, "2026-08-28"); got != (Totals{}) {
		t.Errorf("missing date: got %+v, want zero", got)
	}
	want := Totals{Calories: 500, Protein: 35, Carbs: 45, Fat: 15, Fiber: 6}
	if got := DailyTotals(log, "2026-08-29"); got != want {
		t.Errorf("sparse buckets: got %+v, want %+v", got, want)
	}
}

func TestSumEntries(t *testing.T) {
	entries := []models.LogEntry{
		entry(300, 10, 40, 8, 3),
		entry(200, 5, 30, 7, 1),
	}
	want := Totals{Calories: 500, Protein: 15, Carbs: 70, Fat: 15, Fiber: 4}
	if got := SumEntries(entries); got != want {
		t.Errorf("SumEntries = %+v, want %+v", got, want)
	}
	if got := SumEntries(nil); got != (Totals{}) {
		t.Errorf("SumEntries(nil) = %+v, want zero", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round1(46.45); got != 46.5 {
		t.Errorf("Round1(46.45) = %v", got)
	}
	if got := Round1(46.44); got != 46.4 {
		t.Errorf("Round1(46.44) = %v", got)
	}
	if got := RoundTo(3.14159, 2); got != 3.14 {
		t.Errorf("RoundTo(3.14159, 2) = %v", got)
	}
}
