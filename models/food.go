package models

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the serving unit a food is measured in.
type Unit string

const (
	UnitGrams       Unit = "g"
	UnitMilliliters Unit = "ml"
	UnitOunce       Unit = "oz"
	UnitPound       Unit = "lb"
	UnitFluidOunce  Unit = "fl-oz"
	UnitCup         Unit = "cup"
)

type Category string

const (
	CategoryProtein    Category = "protein"
	CategoryCarbs      Category = "carbs"
	CategoryFats       Category = "fats"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryOther      Category = "other"
)

// Food is a catalog entry: nutrient content per one serving.
type Food struct {
	ID        string   `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string   `gorm:"not null;index" json:"name"`
	Calories  float64  `json:"calories"`
	Protein   float64  `json:"protein"`
	Carbs     float64  `json:"carbs"`
	Fat       float64  `json:"fat"`
	Fiber     float64  `json:"fiber"`
	Serving   float64  `gorm:"not null" json:"serving"`
	Unit      Unit     `gorm:"type:varchar(8)" json:"unit"`
	Category  Category `gorm:"type:varchar(16);index" json:"category"`
	Image     string   `json:"image"`
	Approved  bool     `gorm:"default:false;index" json:"approved"`
	CreatedBy uint     `gorm:"index" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocalIDPrefix marks identifiers minted client-side while the backend was
// unreachable or the user was signed out.
const LocalIDPrefix = "local-"

func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitGrams, UnitMilliliters, UnitOunce, UnitPound, UnitFluidOunce, UnitCup:
		return Unit(s), nil
	}
	// long-form spellings show up in bulk imports
	switch strings.ToLower(s) {
	case "grams", "gram":
		return UnitGrams, nil
	case "milliliters", "milliliter":
		return UnitMilliliters, nil
	case "ounce":
		return UnitOunce, nil
	case "pound":
		return UnitPound, nil
	case "fluid-ounce":
		return UnitFluidOunce, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(s)) {
	case CategoryProtein, CategoryCarbs, CategoryFats, CategoryVegetables,
		CategoryFruits, CategoryDairy, CategoryOther:
		return Category(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Validate enforces the catalog invariants: a non-empty name, non-negative
// nutrients, a positive serving and enumerated unit/category values.
func (f *Food) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("food: name is required")
	}
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 || f.Fiber < 0 {
		return fmt.Errorf("food %q: nutrients must be non-negative", f.Name)
	}
	if f.Serving <= 0 {
		return fmt.Errorf("food %q: serving must be positive", f.Name)
	}
	if _, err := ParseUnit(string(f.Unit)); err != nil {
		return fmt.Errorf("food %q: %w", f.Name, err)
	}
	if _, err := ParseCategory(string(f.Category)); err != nil {
		return fmt.Errorf("food %q: %w", f.Name, err)
	}
	return nil
}

// NewFood builds a validated catalog entry. Fiber is optional and defaults
// to zero; id and image are filled in by the owning store.
func NewFood(name string, calories, protein, carbs, fat, fiber, serving float64, unit Unit, category Category) (Food, error) {
	f := Food{
		Name:     strings.TrimSpace(name),
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    fiber,
		Serving:  serving,
		Unit:     unit,
		Category: category,
	}
	if err := f.Validate(); err != nil {
		return Food{}, err
	}
	return f, nil
}
