package services

import (
	"context"
	"errors"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/utils"

	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the user's profile, creating the default row on first access
// for accounts registered before profiles existed.
func (s *ProfileService) Get(ctx context.Context, userID uint, email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.DefaultProfile(userID, email)
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileInput is the PUT body; zero values mean "leave unchanged" except
// for goals, which may legitimately be set to zero via explicit pointers.
type ProfileInput struct {
	DisplayName string `json:"display_name"`
	System      string `json:"measurement_system"`

	CalorieGoal *float64 `json:"calorie_goal"`
	ProteinGoal *float64 `json:"protein_goal"`
	CarbGoal    *float64 `json:"carb_goal"`
	FatGoal     *float64 `json:"fat_goal"`
	FiberGoal   *float64 `json:"fiber_goal"`
	WaterGoal   *float64 `json:"water_goal"`

	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

func (s *ProfileService) Update(ctx context.Context, userID uint, email string, input ProfileInput) (*models.UserProfile, error) {
	profile, err := s.Get(ctx, userID, email)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		profile.DisplayName = input.DisplayName
	}
	if input.System != "" {
		sys, err := models.ParseMeasurementSystem(input.System)
		if err != nil {
			return nil, err
		}
		profile.System = sys
	}

	if input.CalorieGoal != nil {
		profile.CalorieGoal = *input.CalorieGoal
	}
	if input.ProteinGoal != nil {
		profile.ProteinGoal = *input.ProteinGoal
	}
	if input.CarbGoal != nil {
		profile.CarbGoal = *input.CarbGoal
	}
	if input.FatGoal != nil {
		profile.FatGoal = *input.FatGoal
	}
	if input.FiberGoal != nil {
		profile.FiberGoal = *input.FiberGoal
	}
	if input.WaterGoal != nil {
		profile.WaterGoal = *input.WaterGoal
	}

	if input.Weight > 0 {
		profile.Weight = input.Weight
	}
	if input.Height > 0 {
		profile.Height = input.Height
	}
	if input.Age > 0 {
		profile.Age = input.Age
	}
	if input.Gender != "" {
		profile.Gender = input.Gender
	}
	if input.ActivityLevel != "" {
		profile.ActivityLevel = input.ActivityLevel
	}
	if input.Goal != "" {
		profile.Goal = input.Goal
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// SuggestGoals computes recommended targets from the stored body data.
func (s *ProfileService) SuggestGoals(ctx context.Context, userID uint, email string) (utils.GoalSuggestion, error) {
	profile, err := s.Get(ctx, userID, email)
	if err != nil {
		return utils.GoalSuggestion{}, err
	}
	return utils.SuggestGoals(*profile)
}
