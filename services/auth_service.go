package services

import (
	"context"
	"errors"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	mailer *utils.Mailer // nil when SES is not configured
}

func NewAuthService(db *gorm.DB, mailer *utils.Mailer) *AuthService {
	return &AuthService{db: db, mailer: mailer}
}

func (s *AuthService) Register(ctx context.Context, email, password, displayName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}

	// every account gets a profile row up front
	profile := models.DefaultProfile(user.ID, email)
	profile.DisplayName = displayName
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return err
	}

	if s.mailer != nil {
		_ = s.mailer.SendWelcomeEmail(ctx, email, displayName)
	}
	return nil
}

// Authenticate checks credentials and returns a signed session token.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	result := s.db.WithContext(ctx).Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", nil, errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// ForgotPassword issues a short-lived reset code. It succeeds silently for
// unknown emails so the endpoint cannot be used to probe accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return err
	}

	if s.mailer != nil {
		return s.mailer.SendResetEmail(ctx, user.Email, token)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	var user models.User
	result := s.db.WithContext(ctx).Where("reset_token = ?", token).First(&user)
	if result.Error != nil || token == "" || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.WithContext(ctx).Save(&user).Error
}

func (s *AuthService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
