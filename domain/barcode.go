package domain

import "errors"

var (
	MessageSuccessLookupBarcode = "product found"
	MessageFailedLookupBarcode  = "failed to look up barcode"

	ErrInvalidBarcode  = errors.New("barcode must be 8 to 14 digits")
	ErrProductNotFound = errors.New("product not found")
)

type BarcodeProductResponse struct {
	Barcode  string `json:"barcode"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
