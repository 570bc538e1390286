package domain

import (
	"Pantry-Backend/pkg/expiry"
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessConsumeFoodItem   = "food item consumed successfully"
	MessageSuccessUploadFoodImage   = "food image uploaded successfully"
	MessageSuccessGetCalendar       = "calendar retrieved successfully"
	MessageSuccessGetExpiringItems  = "expiring food items retrieved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedConsumeFoodItem   = "failed to consume food item"
	MessageFailedUploadFoodImage   = "failed to upload food image"
	MessageFailedGetCalendar       = "failed to retrieve calendar"
	MessageFailedGetExpiringItems  = "failed to retrieve expiring food items"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrInvalidLocation    = errors.New("location must be fridge or shelf")
	ErrInvalidUrgency     = errors.New("invalid urgency level")
	ErrInvalidMonth       = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name       string `json:"name" validate:"required,max=120"`
		Quantity   int    `json:"quantity" validate:"min=0"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
		Location   string `json:"location" validate:"required,oneof=fridge shelf"`
		Category   string `json:"category" validate:"omitempty,max=60"`
		Notes      string `json:"notes" validate:"omitempty,max=500"`
		Barcode    string `json:"barcode" validate:"omitempty,numeric,min=8,max=14"`
	}

	UpdateFoodItemRequest struct {
		Name        string `json:"name" validate:"omitempty,max=120"`
		Quantity    *int   `json:"quantity" validate:"omitempty,min=0"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty"`
		ClearExpiry bool   `json:"clear_expiry"`
		Location    string `json:"location" validate:"omitempty,oneof=fridge shelf"`
		Category    string `json:"category" validate:"omitempty,max=60"`
		Notes       string `json:"notes" validate:"omitempty,max=500"`
	}

	ConsumeFoodItemRequest struct {
		Amount int `json:"amount" validate:"required,min=1"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodItemFilter struct {
		Location string
		Category string
		Urgency  string
		Page     int
		Limit    int
	}

	FoodItemResponse struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Quantity    int             `json:"quantity"`
		ExpiryDate  string          `json:"expiry_date,omitempty"`
		ExpiryLabel string          `json:"expiry_label,omitempty"`
		Urgency     *expiry.Urgency `json:"urgency,omitempty"`
		Location    string          `json:"location"`
		Category    string          `json:"category"`
		Notes       string          `json:"notes,omitempty"`
		ImageURL    string          `json:"image_url,omitempty"`
		Barcode     string          `json:"barcode,omitempty"`
		CreatedAt   time.Time       `json:"created_at"`
	}

	CalendarDayResponse struct {
		expiry.Marker
		Label string `json:"label"`
	}

	CalendarResponse struct {
		Month string                `json:"month"`
		Days  []CalendarDayResponse `json:"days"`
	}

	CalendarDateResponse struct {
		Date   string             `json:"date"`
		Label  string             `json:"label"`
		Marker *expiry.Marker     `json:"marker,omitempty"`
		Items  []FoodItemResponse `json:"items"`
	}

	DashboardStatsResponse struct {
		expiry.Statistics
		FridgeItems int `json:"fridge_items"`
		ShelfItems  int `json:"shelf_items"`
	}
)
