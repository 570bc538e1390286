package food

import (
	"Pantry-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	FoodItemQuery struct {
		Location   string
		Category   string
		ExpiryFrom *time.Time
		ExpiryTo   *time.Time
		Page       int
		Limit      int
	}

	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, userID string, query FoodItemQuery) ([]*entities.FoodItem, int64, error)
		GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error)
		GetFoodItemsExpiringBefore(ctx context.Context, userID string, endDate time.Time) ([]*entities.FoodItem, error)
		CountByLocation(ctx context.Context, userID string) (map[string]int, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

const orderByExpiry = "expiry_date ASC NULLS LAST, created_at ASC"

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, q FoodItemQuery) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Where("user_id = ?", userID)

	if q.Location != "" {
		query = query.Where("location = ?", q.Location)
	}
	if q.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", q.Category)
	}
	if q.ExpiryFrom != nil {
		query = query.Where("expiry_date >= ?", *q.ExpiryFrom)
	}
	if q.ExpiryTo != nil {
		query = query.Where("expiry_date <= ?", *q.ExpiryTo)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := query.Offset(offset).Limit(q.Limit).Order(orderByExpiry).Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(orderByExpiry).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order(orderByExpiry).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsExpiringBefore(ctx context.Context, userID string, endDate time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date <= ? AND quantity > 0", userID, endDate).
		Order(orderByExpiry).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) CountByLocation(ctx context.Context, userID string) (map[string]int, error) {
	var rows []struct {
		Location string
		Total    int
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Select("location, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("location").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Location] = row.Total
	}
	return counts, nil
}
