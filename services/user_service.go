package services

import (
	"errors"
	"fmt"
	"strings"

	"vaultpay/models"
	"vaultpay/services/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// UserService owns registration: uniqueness checks, password hashing,
// referral linking and the registration bonus.
type UserService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{db: opts.DB, log: opts.Logger}
}

// NewReferralCode returns a short uppercase code unique enough for invite links.
func NewReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// Register creates the user, credits the registration bonus when enabled and
// links the referral row when a valid code was supplied. All inside one
// transaction so a failed bonus write never leaves a half-created account.
func (s *UserService) Register(username, email, password, fullName, phone, referralCode string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		Password:     string(hashed),
		FullName:     fullName,
		PhoneNumber:  phone,
		Role:         models.RoleUser,
		IsActive:     true,
		ReferralCode: NewReferralCode(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if err := s.applyRegistrationBonus(tx, &user); err != nil {
			return err
		}

		if referralCode != "" {
			if err := s.applyReferral(tx, &user, referralCode); err != nil {
				return err
			}
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserService) applyRegistrationBonus(tx *gorm.DB, user *models.User) error {
	var settings models.BonusSettings
	if err := tx.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if !settings.IsActive || settings.Amount <= 0 {
		return nil
	}

	user.Balance += settings.Amount
	user.TotalBalance += settings.Amount
	s.log.Infof("registration bonus %.2f credited to user %s", settings.Amount, user.Username)
	return nil
}

func (s *UserService) applyReferral(tx *gorm.DB, user *models.User, code string) error {
	var referrer models.User
	if err := tx.Where("referral_code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&referrer).Error; err != nil {
		// Unknown codes are ignored rather than blocking the signup.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warnf("signup with unknown referral code %q", code)
			return nil
		}
		return err
	}

	var settings models.ReferralSettings
	if err := tx.First(&settings).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if !settings.IsActive {
		return nil
	}

	user.ReferredBy = &referrer.ID
	user.Balance += settings.ReferredBonus
	user.TotalBalance += settings.ReferredBonus

	if err := tx.Model(&models.User{}).Where("id = ?", referrer.ID).
		Updates(map[string]interface{}{
			"balance":       gorm.Expr("balance + ?", settings.ReferrerBonus),
			"total_balance": gorm.Expr("total_balance + ?", settings.ReferrerBonus),
		}).Error; err != nil {
		return err
	}

	referral := models.Referral{
		ReferrerID:    referrer.ID,
		ReferredID:    user.ID,
		ReferrerBonus: settings.ReferrerBonus,
		ReferredBonus: settings.ReferredBonus,
	}
	return tx.Create(&referral).Error
}
