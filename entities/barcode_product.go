package entities

type BarcodeProduct struct {
	Barcode  string `gorm:"primary_key" json:"barcode"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Found    bool   `json:"found"`

	Timestamp
}
