package barcode

import (
	"Pantry-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	BarcodeRepository interface {
		GetProduct(ctx context.Context, barcode string) (*entities.BarcodeProduct, error)
		SaveProduct(ctx context.Context, product *entities.BarcodeProduct) error
	}

	barcodeRepository struct {
		db *gorm.DB
	}
)

func NewBarcodeRepository(db *gorm.DB) BarcodeRepository {
	return &barcodeRepository{db: db}
}

func (r *barcodeRepository) GetProduct(ctx context.Context, barcode string) (*entities.BarcodeProduct, error) {
	var product entities.BarcodeProduct
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *barcodeRepository) SaveProduct(ctx context.Context, product *entities.BarcodeProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}
