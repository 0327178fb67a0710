package services

import (
	"context"
	"errors"

	"github.com/Sorin-PSP/EatWise-sub000/models"

	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// UserSummary is the admin user-table row; never exposes password hashes.
type UserSummary struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Disabled bool   `json:"disabled"`
}

func (s *AdminService) ListUsers(ctx context.Context) ([]UserSummary, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("email ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{ID: u.ID, Email: u.Email, Role: u.Role, Disabled: u.Disabled})
	}
	return out, nil
}

// SetUserDisabled soft-locks or restores an account. Accounts are never
// hard-deleted; their foods and log entries stay referenced.
func (s *AdminService) SetUserDisabled(ctx context.Context, userID uint, disabled bool) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	user.Disabled = disabled
	return s.db.WithContext(ctx).Save(&user).Error
}

func (s *AdminService) ListPayments(ctx context.Context, status string) ([]models.Payment, error) {
	var payments []models.Payment
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&payments).Error
	return payments, err
}

func (s *AdminService) RecordPayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *AdminService) UpdatePaymentStatus(ctx context.Context, id uint, status string) (*models.Payment, error) {
	switch status {
	case models.PaymentPending, models.PaymentPaid, models.PaymentFailed, models.PaymentRefunded:
	default:
		return nil, errors.New("unknown payment status")
	}

	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	payment.Status = status
	if err := s.db.WithContext(ctx).Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
