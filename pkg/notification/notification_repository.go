package notification

import (
	"Pantry-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		GetSetting(ctx context.Context, userID string) (*entities.NotificationSetting, error)
		SaveSetting(ctx context.Context, setting *entities.NotificationSetting) error
		GetEnabledSettings(ctx context.Context) ([]*entities.NotificationSetting, error)
		MarkSent(ctx context.Context, userID string, sentAt time.Time) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetSetting(ctx context.Context, userID string) (*entities.NotificationSetting, error) {
	var setting entities.NotificationSetting
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *notificationRepository) SaveSetting(ctx context.Context, setting *entities.NotificationSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *notificationRepository) GetEnabledSettings(ctx context.Context) ([]*entities.NotificationSetting, error) {
	var settings []*entities.NotificationSetting
	err := r.db.WithContext(ctx).
		Where("enabled = ? AND email <> ''", true).
		Order("user_id").
		Find(&settings).Error
	return settings, err
}

func (r *notificationRepository) MarkSent(ctx context.Context, userID string, sentAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.NotificationSetting{}).
		Where("user_id = ?", userID).
		Update("last_sent_at", sentAt).Error
}
