package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
)

// settingsService manages the singleton user settings record.
type settingsService struct {
	db     *gorm.DB
	userID string
}

// NewSettingsService creates a new SettingsServicer keyed by the given user ID.
func NewSettingsService(db *gorm.DB, userID string) SettingsServicer {
	if userID == "" {
		userID = models.DefaultUserID
	}
	return &settingsService{db: db, userID: userID}
}

// Get returns the settings record, creating a zeroed default on first read.
func (s *settingsService) Get() (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", s.userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrSettingsUnavailable, err)
	}

	settings = models.UserSettings{
		UserID:   s.userID,
		Currency: "USD",
	}
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSettingsUnavailable, err)
	}
	return &settings, nil
}

// Update upserts any subset of the settings fields. The starting balance may
// be negative; the monthly targets may not.
func (s *settingsService) Update(fields SettingsUpdate) (*models.UserSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.TotalBalance != nil {
		updates["total_balance"] = *fields.TotalBalance
	}
	if fields.MonthlyIncome != nil {
		if *fields.MonthlyIncome < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "monthly income target cannot be negative")
		}
		updates["monthly_income"] = *fields.MonthlyIncome
	}
	if fields.MonthlyExpenses != nil {
		if *fields.MonthlyExpenses < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "monthly expense budget cannot be negative")
		}
		updates["monthly_expenses"] = *fields.MonthlyExpenses
	}
	if fields.Currency != nil {
		updates["currency"] = *fields.Currency
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return settings, nil
}
