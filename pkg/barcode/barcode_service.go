package barcode

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	BarcodeService interface {
		Lookup(ctx context.Context, barcode string) (domain.BarcodeProductResponse, error)
	}

	barcodeService struct {
		barcodeRepository BarcodeRepository
		client            ProductClient
	}
)

func NewBarcodeService(barcodeRepository BarcodeRepository, client ProductClient) BarcodeService {
	return &barcodeService{
		barcodeRepository: barcodeRepository,
		client:            client,
	}
}

func (s *barcodeService) Lookup(ctx context.Context, barcode string) (domain.BarcodeProductResponse, error) {
	if !ValidBarcode(barcode) {
		return domain.BarcodeProductResponse{}, domain.ErrInvalidBarcode
	}

	cached, err := s.barcodeRepository.GetProduct(ctx, barcode)
	switch {
	case err == nil:
		return toResponse(cached)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.BarcodeProductResponse{}, err
	}

	product, err := s.client.FetchProduct(ctx, barcode)
	if err != nil {
		return domain.BarcodeProductResponse{}, err
	}

	record := &entities.BarcodeProduct{
		Barcode:  barcode,
		Name:     product.Name,
		Brand:    product.Brand,
		Category: product.Category,
		ImageURL: product.ImageURL,
		Found:    product.Found,
	}
	if err := s.barcodeRepository.SaveProduct(ctx, record); err != nil {
		log.Warnf("failed to cache barcode %s: %v", barcode, err)
	}

	return toResponse(record)
}

// ValidBarcode accepts EAN-8, UPC-A, EAN-13 and GTIN-14 style codes.
func ValidBarcode(barcode string) bool {
	if len(barcode) < 8 || len(barcode) > 14 {
		return false
	}
	for _, r := range barcode {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toResponse(product *entities.BarcodeProduct) (domain.BarcodeProductResponse, error) {
	if !product.Found {
		return domain.BarcodeProductResponse{}, domain.ErrProductNotFound
	}
	return domain.BarcodeProductResponse{
		Barcode:  product.Barcode,
		Name:     product.Name,
		Brand:    product.Brand,
		Category: product.Category,
		ImageURL: product.ImageURL,
	}, nil
}
