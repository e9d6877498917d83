package service

import (
	"errors"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

// SettingsInput 알림 설정 수정 입력 (부분 수정 가능하도록 포인터 사용)
type SettingsInput struct {
	OrderUpdates    *bool `json:"order_updates"`
	Promotions      *bool `json:"promotions"`
	Newsletter      *bool `json:"newsletter"`
	ReviewReminders *bool `json:"review_reminders"`
}

type SettingsService interface {
	GetSettings(userID uint) (*model.NotificationSettings, error)
	UpdateSettings(userID uint, input SettingsInput) (*model.NotificationSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the user's notification settings, creating the row
// with defaults on first access.
func (s *settingsService) GetSettings(userID uint) (*model.NotificationSettings, error) {
	settings, err := s.settingsRepo.FindByUserID(userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = &model.NotificationSettings{
		UserID:          userID,
		OrderUpdates:    true,
		Promotions:      false,
		Newsletter:      false,
		ReviewReminders: true,
	}
	if err := s.settingsRepo.Create(settings); err != nil {
		logger.Error("Failed to create default notification settings", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(userID uint, input SettingsInput) (*model.NotificationSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if input.OrderUpdates != nil {
		settings.OrderUpdates = *input.OrderUpdates
	}
	if input.Promotions != nil {
		settings.Promotions = *input.Promotions
	}
	if input.Newsletter != nil {
		settings.Newsletter = *input.Newsletter
	}
	if input.ReviewReminders != nil {
		settings.ReviewReminders = *input.ReviewReminders
	}

	if err := s.settingsRepo.Update(settings); err != nil {
		logger.Error("Failed to update notification settings", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return settings, nil
}
