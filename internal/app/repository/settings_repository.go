package repository

import (
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	FindByUserID(userID uint) (*model.NotificationSettings, error)
	Create(settings *model.NotificationSettings) error
	Update(settings *model.NotificationSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) FindByUserID(userID uint) (*model.NotificationSettings, error) {
	var settings model.NotificationSettings
	if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Create(settings *model.NotificationSettings) error {
	return r.db.Create(settings).Error
}

func (r *settingsRepository) Update(settings *model.NotificationSettings) error {
	return r.db.Save(settings).Error
}
