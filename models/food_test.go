package models

import (
	"strings"
	"testing"
)

func valid() Food {
	return Food{
		Name:     "Chicken Breast",
		Calories: 165,
		Protein:  31,
		Fat:      3.6,
		Serving:  100,
		Unit:     UnitGrams,
		Category: CategoryProtein,
	}
}

func TestFoodValidate(t *testing.T) {
	f := valid()
	if err := f.Validate(); err != nil {
		t.Fatalf("valid food rejected: %v", err)
	}

	for _, tc := range []struct {
		name   string
		mutate func(*Food)
	}{
		{"empty name", func(f *Food) { f.Name = "" }},
		{"blank name", func(f *Food) { f.Name = "   " }},
		{"negative calories", func(f *Food) { f.Calories = -1 }},
		{"negative protein", func(f *Food) { f.Protein = -0.1 }},
		{"zero serving", func(f *Food) { f.Serving = 0 }},
		{"negative serving", func(f *Food) { f.Serving = -100 }},
		{"unknown unit", func(f *Food) { f.Unit = "stone" }},
		{"unknown category", func(f *Food) { f.Category = "junk" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := valid()
			tc.mutate(&f)
			if err := f.Validate(); err == nil {
				t.Errorf("Validate accepted %+v", f)
			}
		})
	}
}

func TestNewFoodTrimsName(t *testing.T) {
	f, err := NewFood("  Oats  ", 389, 16.9, 66.3, 6.9, 10.6, 100, UnitGrams, CategoryCarbs)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "Oats" {
		t.Errorf("Name = %q", f.Name)
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"g":           UnitGrams,
		"ml":          UnitMilliliters,
		"fl-oz":       UnitFluidOunce,
		"grams":       UnitGrams,
		"Gram":        UnitGrams,
		"milliliters": UnitMilliliters,
		"pound":       UnitPound,
	} {
		got, err := ParseUnit(in)
		if err != nil || got != want {
			t.Errorf("ParseUnit(%q) = (%q, %v), want %q", in, got, err, want)
		}
	}
	if _, err := ParseUnit("stone"); err == nil {
		t.Error("ParseUnit accepted an unknown unit")
	}
}

func TestParseMealType(t *testing.T) {
	for _, in := range []string{"breakfast", "Lunch", "DINNER", "snacks", "all"} {
		if _, err := ParseMealType(in); err != nil {
			t.Errorf("ParseMealType(%q): %v", in, err)
		}
	}
	if _, err := ParseMealType("brunch"); err == nil {
		t.Error("ParseMealType accepted brunch")
	}
}

func TestIsLocalID(t *testing.T) {
	if !IsLocalID("local-1700000000-abc") {
		t.Error("local id not recognized")
	}
	for _, id := range []string{"", "srv-1", strings.TrimPrefix("local-x", "local-")} {
		if IsLocalID(id) {
			t.Errorf("IsLocalID(%q) = true", id)
		}
	}
}

func TestValidDate(t *testing.T) {
	for in, want := range map[string]bool{
		"2026-08-29": true,
		"2026-02-29": false,
		"29/08/2026": false,
		"2026-8-29":  false,
		"":           false,
	} {
		if got := ValidDate(in); got != want {
			t.Errorf("ValidDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDailyLogCopy(t *testing.T) {
	orig := DailyLog{
		"2026-08-29": MealBuckets{
			MealBreakfast: {{ID: "e1", Calories: 100}},
		},
	}
	cp := orig.Copy()
	cp["2026-08-29"][MealBreakfast][0].Calories = 999
	cp["2026-08-29"][MealLunch] = append(cp["2026-08-29"][MealLunch], LogEntry{ID: "e2"})

	if orig["2026-08-29"][MealBreakfast][0].Calories != 100 {
		t.Error("Copy shares entry storage with the original")
	}
	if len(orig["2026-08-29"][MealLunch]) != 0 {
		t.Error("Copy shares bucket maps with the original")
	}
}
