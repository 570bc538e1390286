package domain

import (
	"errors"
	"time"
)

const (
	DefaultReminderDaysBefore = 2
	MaxReminderDaysBefore     = 14
)

var (
	MessageSuccessGetNotificationSettings    = "notification settings retrieved successfully"
	MessageSuccessUpdateNotificationSettings = "notification settings updated successfully"
	MessageSuccessSendTestReminder           = "test reminder sent successfully"

	MessageFailedGetNotificationSettings    = "failed to retrieve notification settings"
	MessageFailedUpdateNotificationSettings = "failed to update notification settings"
	MessageFailedSendTestReminder           = "failed to send test reminder"

	ErrReminderEmailRequired = errors.New("an email address is required to enable reminders")
	ErrInvalidDaysBefore     = errors.New("days_before must be between 1 and 14")
)

type (
	UpdateNotificationSettingRequest struct {
		Email      string `json:"email" validate:"omitempty,email"`
		Enabled    *bool  `json:"enabled"`
		DaysBefore *int   `json:"days_before" validate:"omitempty,min=1,max=14"`
	}

	NotificationSettingResponse struct {
		Email      string     `json:"email"`
		Enabled    bool       `json:"enabled"`
		DaysBefore int        `json:"days_before"`
		LastSentAt *time.Time `json:"last_sent_at,omitempty"`
	}
)
