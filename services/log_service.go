package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogService struct {
	db      *gorm.DB
	foodSvc *FoodService
	hub     *RealtimeHub
}

func NewLogService(db *gorm.DB, foodSvc *FoodService, hub *RealtimeHub) *LogService {
	return &LogService{db: db, foodSvc: foodSvc, hub: hub}
}

// ListByDate returns the day's entries with their frozen snapshots,
// bucket order then insertion order.
func (s *LogService) ListByDate(ctx context.Context, userID uint, date string) ([]models.LogEntry, error) {
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %q", date)
	}
	var entries []models.LogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("meal_type ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

// Add looks up the food, scales its nutrients to quantity and stores the
// denormalized entry. The "all" meal sentinel resolves to breakfast, the
// same default the add flows have always used.
func (s *LogService) Add(ctx context.Context, userID uint, date string, mealType models.MealType, foodID string, quantity float64) (*models.LogEntry, error) {
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %q", date)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if mealType == models.MealAll {
		mealType = models.MealBreakfast
	}
	if _, err := models.ParseMealType(string(mealType)); err != nil {
		return nil, err
	}

	food, err := s.foodSvc.Get(ctx, foodID)
	if err != nil {
		return nil, err
	}

	snap := nutrition.Snapshot(*food, quantity)
	entry := models.LogEntry{
		ID:       uuid.NewString(),
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		FoodID:   food.ID,
		FoodName: food.Name,
		Quantity: quantity,
		Unit:     food.Unit,
		Calories: snap.Calories,
		Protein:  snap.Protein,
		Carbs:    snap.Carbs,
		Fat:      snap.Fat,
		Fiber:    snap.Fiber,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	s.hub.Broadcast(userID, EventEntryCreated, entry)
	return &entry, nil
}

func (s *LogService) Delete(ctx context.Context, userID uint, id string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.LogEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.hub.Broadcast(userID, EventEntryDeleted, map[string]string{"id": id})
	return nil
}

// Totals sums the day's entries into one record.
func (s *LogService) Totals(ctx context.Context, userID uint, date string) (nutrition.Totals, error) {
	entries, err := s.ListByDate(ctx, userID, date)
	if err != nil {
		return nutrition.Totals{}, err
	}
	return nutrition.SumEntries(entries), nil
}

// ListRange returns entries for [from, to] inclusive, used by analytics.
func (s *LogService) ListRange(ctx context.Context, userID uint, from, to string) ([]models.LogEntry, error) {
	if !models.ValidDate(from) || !models.ValidDate(to) {
		return nil, errors.New("invalid date range")
	}
	var entries []models.LogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}
