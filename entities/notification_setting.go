package entities

import (
	"github.com/google/uuid"
	"time"
)

type NotificationSetting struct {
	UserID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"user_id"`
	Email      string     `json:"email"`
	Enabled    bool       `json:"enabled"`
	DaysBefore int        `gorm:"default:2" json:"days_before"`
	LastSentAt *time.Time `json:"last_sent_at,omitempty"`

	Timestamp
}
