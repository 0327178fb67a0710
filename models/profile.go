package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type MeasurementSystem string

const (
	SystemMetric   MeasurementSystem = "metric"
	SystemImperial MeasurementSystem = "imperial"
)

func ParseMeasurementSystem(s string) (MeasurementSystem, error) {
	switch MeasurementSystem(strings.ToLower(s)) {
	case SystemMetric, SystemImperial:
		return MeasurementSystem(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown measurement system %q", s)
}

// UserProfile holds each user's display settings and daily intake targets.
// One row per authenticated identity, created on first sign-in if absent.
type UserProfile struct {
	gorm.Model
	UserID      uint              `gorm:"uniqueIndex;not null" json:"-"`
	Email       string            `json:"email"`
	DisplayName string            `json:"display_name"`
	System      MeasurementSystem `gorm:"size:10;default:metric" json:"measurement_system"`

	CalorieGoal float64 `json:"calorie_goal"` // kcal
	ProteinGoal float64 `json:"protein_goal"` // g
	CarbGoal    float64 `json:"carb_goal"`    // g
	FatGoal     float64 `json:"fat_goal"`     // g
	FiberGoal   float64 `json:"fiber_goal"`   // g
	WaterGoal   float64 `json:"water_goal"`   // glasses

	Weight        float64 `json:"weight,omitempty"` // kg
	Height        float64 `json:"height,omitempty"` // cm
	Age           int     `json:"age,omitempty"`
	Gender        string  `gorm:"size:10" json:"gender,omitempty"`
	ActivityLevel string  `gorm:"size:20" json:"activity_level,omitempty"`
	Goal          string  `gorm:"size:20" json:"goal,omitempty"` // lose | maintain | gain
}

// DefaultProfile is what a brand-new user starts with.
func DefaultProfile(userID uint, email string) UserProfile {
	return UserProfile{
		UserID:      userID,
		Email:       email,
		System:      SystemMetric,
		CalorieGoal: 2000,
		ProteinGoal: 120,
		CarbGoal:    250,
		FatGoal:     65,
		FiberGoal:   30,
		WaterGoal:   8,
	}
}
