package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	Name       string     `json:"name"`
	Quantity   int        `gorm:"check:quantity >= 0" json:"quantity"`
	ExpiryDate *time.Time `gorm:"type:date;index" json:"expiry_date,omitempty"`
	Location   string     `gorm:"index" json:"location"` // "fridge", "shelf"
	Category   string     `json:"category"`
	Notes      string     `json:"notes,omitempty"`
	ImageURL   string     `json:"image_url,omitempty"`
	Barcode    string     `json:"barcode,omitempty"`

	Timestamp
}
