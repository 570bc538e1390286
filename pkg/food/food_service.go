package food

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"Pantry-Backend/internal/utils/storage"
	"Pantry-Backend/pkg/expiry"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultExpiringDays = 7
	maxExpiringDays     = 90
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, filter domain.FoodItemFilter) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		ConsumeFoodItem(ctx context.Context, id string, req domain.ConsumeFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) (domain.FoodItemResponse, error)
		GetCalendar(ctx context.Context, userID string, month string) (domain.CalendarResponse, error)
		GetCalendarDate(ctx context.Context, userID string, date string) (domain.CalendarDateResponse, error)
		GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.FoodItemResponse, error)
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
		location       *time.Location
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3, location *time.Location) FoodService {
	if location == nil {
		location = time.UTC
	}
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
		location:       location,
		now:            time.Now,
	}
}

func (s *foodService) today() expiry.Date {
	return expiry.Today(s.now(), s.location)
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	if req.Quantity < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}
	if !validLocation(req.Location) {
		return domain.FoodItemResponse{}, domain.ErrInvalidLocation
	}

	expiryDate, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	foodItem := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     userUUID,
		Name:       strings.TrimSpace(req.Name),
		Quantity:   req.Quantity,
		ExpiryDate: expiryDate,
		Location:   req.Location,
		Category:   strings.TrimSpace(req.Category),
		Notes:      req.Notes,
		Barcode:    req.Barcode,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(*foodItem, s.today()), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if req.Name != "" {
		foodItem.Name = strings.TrimSpace(req.Name)
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
		}
		foodItem.Quantity = *req.Quantity
	}

	if req.Location != "" {
		if !validLocation(req.Location) {
			return domain.FoodItemResponse{}, domain.ErrInvalidLocation
		}
		foodItem.Location = req.Location
	}

	if req.Category != "" {
		foodItem.Category = strings.TrimSpace(req.Category)
	}

	if req.Notes != "" {
		foodItem.Notes = req.Notes
	}

	switch {
	case req.ClearExpiry:
		foodItem.ExpiryDate = nil
	case req.ExpiryDate != "":
		expiryDate, err := parseExpiry(req.ExpiryDate)
		if err != nil {
			return domain.FoodItemResponse{}, err
		}
		foodItem.ExpiryDate = expiryDate
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(*foodItem, s.today()), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Warnf("failed to delete image for food item %s: %v", foodItem.ID, err)
			}
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, filter domain.FoodItemFilter) ([]domain.FoodItemResponse, int64, error) {
	today := s.today()

	query := FoodItemQuery{
		Location: filter.Location,
		Category: filter.Category,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	if filter.Location != "" && !validLocation(filter.Location) {
		return nil, 0, domain.ErrInvalidLocation
	}

	if filter.Urgency != "" {
		from, to, ok := expiry.ExpiryRange(expiry.Level(filter.Urgency), today)
		if !ok {
			return nil, 0, domain.ErrInvalidUrgency
		}
		query.ExpiryFrom = dateBound(from)
		query.ExpiryTo = dateBound(to)
	}

	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, userID, query)
	if err != nil {
		return nil, 0, err
	}

	return s.toResponses(foodItems, today), count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(*foodItem, s.today()), nil
}

func (s *foodService) ConsumeFoodItem(ctx context.Context, id string, req domain.ConsumeFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	if req.Amount <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	foodItem.Quantity -= req.Amount
	if foodItem.Quantity < 0 {
		foodItem.Quantity = 0
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(*foodItem, s.today()), nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedItem(ctx, req.FoodItemID, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	existingKey := ""
	if foodItem.ImageURL != "" {
		existingKey = s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
	}

	if existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		if errors.Is(uploadErr, storage.ErrFileTypeNotAllowed) {
			return domain.FoodItemResponse{}, domain.ErrInvalidImageFormat
		}
		return domain.FoodItemResponse{}, uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(*foodItem, s.today()), nil
}

func (s *foodService) GetCalendar(ctx context.Context, userID string, month string) (domain.CalendarResponse, error) {
	today := s.today()

	monthStart := expiry.Date{Year: today.Year, Month: today.Month, Day: 1}
	if month != "" {
		parsed, err := expiry.ParseMonth(month)
		if err != nil {
			return domain.CalendarResponse{}, domain.ErrInvalidMonth
		}
		monthStart = parsed
	}
	first, last := expiry.MonthRange(monthStart)

	foodItems, err := s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, first.Time(), last.Time())
	if err != nil {
		return domain.CalendarResponse{}, err
	}

	markers := expiry.BuildMarkers(expiry.BuildBuckets(derefItems(foodItems)), today)

	days := make([]domain.CalendarDayResponse, 0, len(markers))
	for _, marker := range markers {
		label, err := expiry.FormatDateForDisplay(marker.Date, today)
		if err != nil {
			log.Warnf("calendar: %v", err)
			label = marker.Date
		}
		days = append(days, domain.CalendarDayResponse{Marker: marker, Label: label})
	}

	return domain.CalendarResponse{
		Month: fmt.Sprintf("%04d-%02d", first.Year, int(first.Month)),
		Days:  days,
	}, nil
}

func (s *foodService) GetCalendarDate(ctx context.Context, userID string, date string) (domain.CalendarDateResponse, error) {
	today := s.today()

	day, err := expiry.ParseDate(date)
	if err != nil {
		return domain.CalendarDateResponse{}, domain.ErrInvalidExpiryDate
	}

	foodItems, err := s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, day.Time(), day.Time())
	if err != nil {
		return domain.CalendarDateResponse{}, err
	}

	response := domain.CalendarDateResponse{
		Date:  day.String(),
		Label: expiry.FormatDate(day, today),
		Items: s.toResponses(foodItems, today),
	}

	if marker, ok := expiry.BuildMarker(day, derefItems(foodItems), today); ok {
		response.Marker = &marker
	}

	return response, nil
}

func (s *foodService) GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.FoodItemResponse, error) {
	if days <= 0 {
		days = DefaultExpiringDays
	}
	if days > maxExpiringDays {
		days = maxExpiringDays
	}

	today := s.today()
	foodItems, err := s.foodRepository.GetFoodItemsExpiringBefore(ctx, userID, today.AddDays(days).Time())
	if err != nil {
		return nil, err
	}

	return s.toResponses(foodItems, today), nil
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	locations, err := s.foodRepository.CountByLocation(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		Statistics:  expiry.Summarize(derefItems(foodItems), s.today()),
		FridgeItems: locations[domain.LocationFridge],
		ShelfItems:  locations[domain.LocationShelf],
	}, nil
}

func (s *foodService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrFoodItemNotFound
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	return foodItem, nil
}

func (s *foodService) toResponses(foodItems []*entities.FoodItem, today expiry.Date) []domain.FoodItemResponse {
	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, s.toResponse(*item, today))
	}
	return response
}

func (s *foodService) toResponse(item entities.FoodItem, today expiry.Date) domain.FoodItemResponse {
	response := domain.FoodItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Quantity:  item.Quantity,
		Location:  item.Location,
		Category:  item.Category,
		Notes:     item.Notes,
		ImageURL:  item.ImageURL,
		Barcode:   item.Barcode,
		CreatedAt: item.CreatedAt,
	}

	if urgency, ok := expiry.ClassifyItem(item, today); ok {
		date := expiry.DateOf(*item.ExpiryDate)
		response.ExpiryDate = date.String()
		response.ExpiryLabel = expiry.FormatDate(date, today)
		response.Urgency = &urgency
	}

	return response
}

func parseExpiry(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	date, err := expiry.ParseDate(value)
	if err != nil {
		return nil, domain.ErrInvalidExpiryDate
	}

	t := date.Time()
	return &t, nil
}

func dateBound(d *expiry.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func derefItems(foodItems []*entities.FoodItem) []entities.FoodItem {
	items := make([]entities.FoodItem, 0, len(foodItems))
	for _, item := range foodItems {
		items = append(items, *item)
	}
	return items
}

func validLocation(location string) bool {
	return location == domain.LocationFridge || location == domain.LocationShelf
}
