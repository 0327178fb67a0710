package services

import (
	"context"
	"errors"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrForbidden = errors.New("forbidden")

type FoodService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewFoodService(db *gorm.DB, hub *RealtimeHub) *FoodService {
	return &FoodService{db: db, hub: hub}
}

// List returns the catalog visible to a user: approved foods plus the
// user's own pending ones, ordered by name. Admins see everything.
func (s *FoodService) List(ctx context.Context, userID uint, isAdmin bool) ([]models.Food, error) {
	var foods []models.Food
	q := s.db.WithContext(ctx).Order("name ASC")
	if !isAdmin {
		q = q.Where("approved = ? OR created_by = ?", true, userID)
	}
	err := q.Find(&foods).Error
	return foods, err
}

// Create assigns the id and image and stores the entry. Foods created by
// admins are approved immediately; everyone else's wait in the queue.
func (s *FoodService) Create(ctx context.Context, userID uint, isAdmin bool, food models.Food) (*models.Food, error) {
	if err := food.Validate(); err != nil {
		return nil, err
	}

	food.ID = uuid.NewString()
	food.CreatedBy = userID
	food.Approved = isAdmin
	if food.Image == "" {
		food.Image = utils.FoodImageURL(food.Name, food.Category)
	}

	if err := s.db.WithContext(ctx).Create(&food).Error; err != nil {
		return nil, err
	}
	s.hub.Broadcast(userID, EventFoodCreated, food)
	return &food, nil
}

// FoodPatch carries partial updates; nil fields are left untouched.
type FoodPatch struct {
	Name     *string          `json:"name,omitempty"`
	Calories *float64         `json:"calories,omitempty"`
	Protein  *float64         `json:"protein,omitempty"`
	Carbs    *float64         `json:"carbs,omitempty"`
	Fat      *float64         `json:"fat,omitempty"`
	Fiber    *float64         `json:"fiber,omitempty"`
	Serving  *float64         `json:"serving,omitempty"`
	Unit     *models.Unit     `json:"unit,omitempty"`
	Category *models.Category `json:"category,omitempty"`
	Image    *string          `json:"image,omitempty"`
}

// Apply overlays the patch onto a food without validating; the caller
// validates the merged result.
func (p FoodPatch) Apply(f *models.Food) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Calories != nil {
		f.Calories = *p.Calories
	}
	if p.Protein != nil {
		f.Protein = *p.Protein
	}
	if p.Carbs != nil {
		f.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		f.Fat = *p.Fat
	}
	if p.Fiber != nil {
		f.Fiber = *p.Fiber
	}
	if p.Serving != nil {
		f.Serving = *p.Serving
	}
	if p.Unit != nil {
		f.Unit = *p.Unit
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Image != nil {
		f.Image = *p.Image
	}
}

func (s *FoodService) Update(ctx context.Context, userID uint, isAdmin bool, id string, patch FoodPatch) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !isAdmin && food.CreatedBy != userID {
		return nil, ErrForbidden
	}

	patch.Apply(&food)
	if err := food.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(&food).Error; err != nil {
		return nil, err
	}
	s.hub.Broadcast(userID, EventFoodUpdated, food)
	return &food, nil
}

// Delete removes a catalog entry. Existing log entries keep their
// denormalized snapshot, so no cascade is needed.
func (s *FoodService) Delete(ctx context.Context, userID uint, isAdmin bool, id string) error {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !isAdmin && food.CreatedBy != userID {
		return ErrForbidden
	}

	if err := s.db.WithContext(ctx).Delete(&models.Food{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.hub.Broadcast(userID, EventFoodDeleted, map[string]string{"id": id})
	return nil
}

func (s *FoodService) Get(ctx context.Context, id string) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// Pending lists the approval queue, oldest first.
func (s *FoodService) Pending(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at ASC").
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) Approve(ctx context.Context, id string) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	food.Approved = true
	if err := s.db.WithContext(ctx).Save(&food).Error; err != nil {
		return nil, err
	}
	s.hub.Broadcast(food.CreatedBy, EventFoodApproved, food)
	return &food, nil
}
