package utils

import (
	"errors"
	"math"

	"github.com/Sorin-PSP/EatWise-sub000/models"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

// GoalSuggestion is the auto-computed set of daily targets offered on the
// profile screen. Values are rounded to whole units.
type GoalSuggestion struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// SuggestGoals derives daily targets from the profile's body data using the
// Mifflin-St Jeor estimate, adjusted for activity level and goal. Returns an
// error when the profile is missing weight, height or age.
func SuggestGoals(p models.UserProfile) (GoalSuggestion, error) {
	if p.Weight <= 0 || p.Height <= 0 || p.Age <= 0 {
		return GoalSuggestion{}, errors.New("profile needs weight, height and age for goal suggestions")
	}

	bmi, err := CalculateBMI(p.Height, p.Weight)
	if err != nil {
		return GoalSuggestion{}, err
	}

	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = activityFactors["sedentary"]
	}
	calories := bmr * factor

	switch p.Goal {
	case "lose":
		calories -= 500
	case "gain":
		calories += 300
	}
	if calories < 1200 {
		calories = 1200
	}

	// 30/40/30 protein/carbs/fat split
	return GoalSuggestion{
		BMI:         math.Round(bmi*10) / 10,
		BMICategory: BMICategory(bmi),
		Calories:    math.Round(calories),
		Protein:     math.Round(calories * 0.30 / 4),
		Carbs:       math.Round(calories * 0.40 / 4),
		Fat:         math.Round(calories * 0.30 / 9),
	}, nil
}
