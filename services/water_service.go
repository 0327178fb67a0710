package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sorin-PSP/EatWise-sub000/models"

	"gorm.io/gorm"
)

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

// Upsert sets the glasses count for (user, date).
func (s *WaterService) Upsert(ctx context.Context, userID uint, date string, glasses float64) (*models.WaterIntake, error) {
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %q", date)
	}
	if glasses < 0 {
		return nil, fmt.Errorf("glasses must be non-negative")
	}

	intake := models.WaterIntake{UserID: userID, Date: date, Glasses: glasses}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Assign(models.WaterIntake{Glasses: glasses}).
		FirstOrCreate(&intake).Error
	if err != nil {
		return nil, err
	}
	return &intake, nil
}

// Get returns the day's glasses count, zero when nothing was logged.
func (s *WaterService) Get(ctx context.Context, userID uint, date string) (float64, error) {
	if !models.ValidDate(date) {
		return 0, fmt.Errorf("invalid date %q", date)
	}

	var intake models.WaterIntake
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&intake).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return intake.Glasses, nil
}
